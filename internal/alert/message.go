package alert

import (
	"fmt"
	"strings"

	"github.com/DevFrancisLab/saferoute/internal/domain"
)

// VoiceMessage is the text-to-speech script for a high-severity alert.
func VoiceMessage(c domain.AlertCandidate) string {
	return fmt.Sprintf("Alert. %s ahead, %s away. Reduce speed immediately.",
		c.Type.Label(), FormatDistance(c.DistanceMeters))
}

// VoiceFallbackSMS is the SMS sent when the voice call could not be placed.
func VoiceFallbackSMS(c domain.AlertCandidate) string {
	return fmt.Sprintf("ALERT %s: %s ahead. Reduce speed immediately.",
		strings.ToUpper(c.Type.Label()), FormatDistance(c.DistanceMeters))
}

// SMSMessage is the normal-severity alert text.
func SMSMessage(c domain.AlertCandidate) string {
	return fmt.Sprintf("%s: %s ahead. Slow down.",
		c.Type.Label(), FormatDistance(c.DistanceMeters))
}

// FormatDistance renders meters below 1 km and kilometers above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f meters", meters)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}
