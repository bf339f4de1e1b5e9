package domain

import (
	"time"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelVoice Channel = "VOICE"
	ChannelSMS   Channel = "SMS"
	ChannelNone  Channel = "NONE" // below alert threshold
)

type AttemptOutcome string

const (
	OutcomeSent       AttemptOutcome = "sent"
	OutcomeFailed     AttemptOutcome = "failed"
	OutcomeSuppressed AttemptOutcome = "suppressed"
)

// AlertCandidate is a hazard annotated with its distance from the driver.
// It only lives inside one pipeline run.
type AlertCandidate struct {
	Hazard
	DistanceMeters float64 `json:"distance_m"`
}

// AlertAttempt is one row of the append-only notification audit log.
type AlertAttempt struct {
	ID          uuid.UUID      `json:"id"`
	DriverPhone string         `json:"driver_phone"`
	HazardID    uuid.UUID      `json:"hazard_id"`
	Channel     Channel        `json:"channel"`
	Outcome     AttemptOutcome `json:"outcome"`
	Detail      string         `json:"detail,omitempty"`
	SentAt      time.Time      `json:"sent_at"`
}

type AlertedHazard struct {
	ID             uuid.UUID  `json:"id"`
	Type           HazardType `json:"type"`
	Severity       int        `json:"severity"`
	DistanceMeters float64    `json:"distance_m"`
	Channel        Channel    `json:"channel"`
}

type AttemptResult struct {
	HazardID uuid.UUID      `json:"hazard_id"`
	Type     HazardType     `json:"type"`
	Severity int            `json:"severity"`
	Channel  Channel        `json:"channel"`
	Outcome  AttemptOutcome `json:"outcome"`
	Detail   string         `json:"detail,omitempty"`
}

type AlertResult struct {
	Success      bool            `json:"success"`
	HazardsFound int             `json:"hazards_found"`
	AfterDedup   int             `json:"after_dedup"`
	AlertsSent   int             `json:"alerts_sent"`
	Hazards      []AlertedHazard `json:"hazards"`
	Attempts     []AttemptResult `json:"attempts"`
}
