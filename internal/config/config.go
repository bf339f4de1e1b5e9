package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Gateway  GatewayConfig  `json:"gateway"`
	Alert    AlertConfig    `json:"alert"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// GatewayConfig points at the Africa's Talking SMS/voice REST API.
type GatewayConfig struct {
	Username string        `json:"username"`
	APIKey   string        `json:"api_key,omitempty"`
	SMSURL   string        `json:"sms_url"`
	VoiceURL string        `json:"voice_url"`
	CallerID string        `json:"caller_id"`
	Timeout  time.Duration `json:"timeout"`
	Disabled bool          `json:"disabled"`
}

// AlertConfig carries every tunable of the alert pipeline in one place
// instead of scattered constants.
type AlertConfig struct {
	RadiusMeters        float64       `json:"radius_meters"`
	DedupDistanceMeters float64       `json:"dedup_distance_meters"`
	Cooldown            time.Duration `json:"cooldown"`
	SeverityThreshold   int           `json:"severity_threshold"`
	VoiceSeverityFloor  int           `json:"voice_severity_floor"`
	NotifyTimeout       time.Duration `json:"notify_timeout"`
	CacheTTL            time.Duration `json:"cache_ttl"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "saferoute_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Gateway: GatewayConfig{
			Username: getEnv("AT_USERNAME", "sandbox"),
			APIKey:   getEnv("AT_API_KEY", ""),
			SMSURL:   getEnv("AT_SMS_URL", "https://api.sandbox.africastalking.com/version1/messaging"),
			VoiceURL: getEnv("AT_VOICE_URL", "https://voice.sandbox.africastalking.com/call"),
			CallerID: getEnv("AT_CALLER_ID", ""),
			Timeout:  getEnvDuration("AT_TIMEOUT", 5*time.Second),
			Disabled: getEnvBool("AT_DISABLED", false),
		},
		Alert: AlertConfig{
			RadiusMeters:        getEnvFloat("ALERT_RADIUS_METERS", 300),
			DedupDistanceMeters: getEnvFloat("ALERT_DEDUP_DISTANCE_METERS", 50),
			Cooldown:            getEnvDuration("ALERT_COOLDOWN", 30*time.Minute),
			SeverityThreshold:   getEnvInt("ALERT_SEVERITY_THRESHOLD", 2),
			VoiceSeverityFloor:  getEnvInt("ALERT_VOICE_SEVERITY_FLOOR", 4),
			NotifyTimeout:       getEnvDuration("ALERT_NOTIFY_TIMEOUT", 5*time.Second),
			CacheTTL:            getEnvDuration("ALERT_CACHE_TTL", 1*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("alert_radius_m", cfg.Alert.RadiusMeters))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	a := c.Alert
	if a.RadiusMeters <= 0 {
		return errors.New("ALERT_RADIUS_METERS must be positive")
	}
	if a.DedupDistanceMeters <= 0 {
		return errors.New("ALERT_DEDUP_DISTANCE_METERS must be positive")
	}
	if a.Cooldown <= 0 {
		return errors.New("ALERT_COOLDOWN must be positive")
	}
	if a.SeverityThreshold < 1 || a.SeverityThreshold > 5 {
		return errors.New("ALERT_SEVERITY_THRESHOLD must be 1-5")
	}
	if a.VoiceSeverityFloor < 1 || a.VoiceSeverityFloor > 5 {
		return errors.New("ALERT_VOICE_SEVERITY_FLOOR must be 1-5")
	}
	if a.VoiceSeverityFloor < a.SeverityThreshold {
		return errors.New("ALERT_VOICE_SEVERITY_FLOOR must be >= ALERT_SEVERITY_THRESHOLD")
	}

	if c.Gateway.Disabled {
		slog.Warn("notifier gateway DISABLED via AT_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
