package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:  "local",
		Http: HttpConfig{Port: ":8080"},
		Postgres: PostgresConfig{
			Host: "localhost",
		},
		Alert: AlertConfig{
			RadiusMeters:        300,
			DedupDistanceMeters: 50,
			Cooldown:            30 * time.Minute,
			SeverityThreshold:   2,
			VoiceSeverityFloor:  4,
			NotifyTimeout:       5 * time.Second,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "port without colon",
			mutate:  func(c *Config) { c.Http.Port = "8080" },
			wantMsg: "HTTP_PORT",
		},
		{
			name:    "missing postgres host",
			mutate:  func(c *Config) { c.Postgres.Host = "" },
			wantMsg: "POSTGRES_HOST",
		},
		{
			name:    "non-positive radius",
			mutate:  func(c *Config) { c.Alert.RadiusMeters = 0 },
			wantMsg: "ALERT_RADIUS_METERS",
		},
		{
			name:    "non-positive dedup distance",
			mutate:  func(c *Config) { c.Alert.DedupDistanceMeters = -1 },
			wantMsg: "ALERT_DEDUP_DISTANCE_METERS",
		},
		{
			name:    "non-positive cooldown",
			mutate:  func(c *Config) { c.Alert.Cooldown = 0 },
			wantMsg: "ALERT_COOLDOWN",
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Alert.SeverityThreshold = 6 },
			wantMsg: "ALERT_SEVERITY_THRESHOLD",
		},
		{
			name:    "voice floor below threshold",
			mutate:  func(c *Config) { c.Alert.SeverityThreshold = 3; c.Alert.VoiceSeverityFloor = 2 },
			wantMsg: "ALERT_VOICE_SEVERITY_FLOOR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
