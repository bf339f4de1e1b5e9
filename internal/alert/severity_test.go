package alert_test

import (
	"errors"
	"testing"

	"github.com/DevFrancisLab/saferoute/internal/alert"
	"github.com/DevFrancisLab/saferoute/internal/domain"
	"github.com/DevFrancisLab/saferoute/pkg/e"
)

func TestPolicyClassify_Default(t *testing.T) {
	t.Parallel()

	p := alert.DefaultPolicy()

	tests := []struct {
		severity int
		want     domain.Channel
		wantErr  bool
	}{
		{severity: 1, want: domain.ChannelNone},
		{severity: 2, want: domain.ChannelSMS},
		{severity: 3, want: domain.ChannelSMS},
		{severity: 4, want: domain.ChannelVoice},
		{severity: 5, want: domain.ChannelVoice},
		{severity: 0, wantErr: true},
		{severity: 6, wantErr: true},
		{severity: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := p.Classify(tt.severity)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("severity %d: expected error got %v", tt.severity, got)
			}
			if !errors.Is(err, e.ErrInvalidSeverity) {
				t.Fatalf("severity %d: expected ErrInvalidSeverity got %v", tt.severity, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("severity %d: unexpected err %v", tt.severity, err)
		}
		if got != tt.want {
			t.Fatalf("severity %d: got %s want %s", tt.severity, got, tt.want)
		}
	}
}

func TestPolicyClassify_CustomBoundaries(t *testing.T) {
	t.Parallel()

	// Everything notifies, voice only at the top.
	p := alert.Policy{Threshold: 1, VoiceFloor: 5}

	if got, _ := p.Classify(1); got != domain.ChannelSMS {
		t.Fatalf("severity 1 got %s want SMS", got)
	}
	if got, _ := p.Classify(4); got != domain.ChannelSMS {
		t.Fatalf("severity 4 got %s want SMS", got)
	}
	if got, _ := p.Classify(5); got != domain.ChannelVoice {
		t.Fatalf("severity 5 got %s want VOICE", got)
	}
}
