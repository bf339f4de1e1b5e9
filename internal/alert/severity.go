package alert

import (
	"fmt"

	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

// Policy maps hazard severity to a notification channel. Both boundaries
// are configuration so deployments can tune them.
type Policy struct {
	Threshold  int // minimum severity that triggers any notification
	VoiceFloor int // minimum severity routed to a voice call
}

func DefaultPolicy() Policy {
	return Policy{Threshold: 2, VoiceFloor: 4}
}

// Classify picks the channel for a severity value. Severities below the
// threshold map to ChannelNone; values outside 1..5 mean corrupt stored
// data and return ErrInvalidSeverity.
func (p Policy) Classify(severity int) (domain.Channel, error) {
	if severity < 1 || severity > 5 {
		return domain.ChannelNone, fmt.Errorf("severity %d: %w", severity, e.ErrInvalidSeverity)
	}
	switch {
	case severity < p.Threshold:
		return domain.ChannelNone, nil
	case severity >= p.VoiceFloor:
		return domain.ChannelVoice, nil
	default:
		return domain.ChannelSMS, nil
	}
}
