package alert_test

import (
	"testing"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/alert"
)

func TestInCooldown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	tests := []struct {
		name   string
		sentAt time.Time
		want   bool
	}{
		{name: "just sent", sentAt: now, want: true},
		{name: "inside window", sentAt: now.Add(-29 * time.Minute), want: true},
		{name: "one tick before the edge", sentAt: now.Add(-window).Add(time.Nanosecond), want: true},
		{name: "exactly at the edge", sentAt: now.Add(-window), want: false},
		{name: "past the window", sentAt: now.Add(-31 * time.Minute), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := alert.InCooldown(tt.sentAt, now, window); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}
