package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// MailConfig carries credentials and tuning for the notification transports.
// Every field may legitimately be empty: running without any configured
// transport is a valid, degraded mode, not a startup error.
type MailConfig struct {
	SendGridAPIKey string
	Sender         string
	Recipient      string

	SMTPHost     string
	SMTPPort     int
	SMTPSecure   bool
	SMTPUser     string
	SMTPPassword string

	GreetingTimeout   time.Duration
	ConnectionTimeout time.Duration
	SocketTimeout     time.Duration

	// TLSSkipVerify disables certificate validation on the SMTP transport.
	// Maps to SMTP_TLS_REJECT_UNAUTHORIZED=false.
	TLSSkipVerify bool
}

// HasSendGrid reports whether the API-key transport is configured.
func (m MailConfig) HasSendGrid() bool {
	return m.SendGridAPIKey != ""
}

// HasSMTP reports whether the connection-based transport is configured.
func (m MailConfig) HasSMTP() bool {
	return m.SMTPHost != "" && m.SMTPUser != "" && m.SMTPPassword != ""
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	Port             string
	AllowedOrigins   []string
	StaticDir        string
	RateLimitContact RateLimitConfig
	Mail             MailConfig
}

// Gmail app passwords are issued as four groups of four characters and are
// frequently pasted with the grouping spaces intact.
const appPasswordLength = 16

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		StaticDir:      os.Getenv("STATIC_DIR"),
		Mail:           loadMail(),
	}

	rl, err := parseRateLimit(getEnv("CONTACT_RATE_LIMIT", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTACT_RATE_LIMIT value: %w", err)
	}
	cfg.RateLimitContact = rl

	return cfg, nil
}

func loadMail() MailConfig {
	secure := parseBool(getEnv("SMTP_SECURE", "false"))

	defaultPort := 587
	if secure {
		defaultPort = 465
	}
	port := defaultPort
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && parsed > 0 {
			port = parsed
		}
	}

	user := strings.TrimSpace(firstEnv("SMTP_USER", "GMAIL_USER"))
	sender := strings.TrimSpace(getEnv("MAIL_FROM", user))

	return MailConfig{
		SendGridAPIKey: strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		Sender:         sender,
		Recipient:      getEnv("CONTACT_RECIPIENT", sender),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     port,
		SMTPSecure:   secure,
		SMTPUser:     user,
		SMTPPassword: NormalizeAppPassword(firstEnv("SMTP_PASSWORD", "SMTP_PASS", "GMAIL_APP_PASSWORD")),

		GreetingTimeout:   parseDuration(getEnv("SMTP_GREETING_TIMEOUT", "5s"), 5*time.Second),
		ConnectionTimeout: parseDuration(getEnv("SMTP_CONNECTION_TIMEOUT", "10s"), 10*time.Second),
		SocketTimeout:     parseDuration(getEnv("SMTP_SOCKET_TIMEOUT", "10s"), 10*time.Second),

		TLSSkipVerify: !parseBool(getEnv("SMTP_TLS_REJECT_UNAUTHORIZED", "true")),
	}
}

// NormalizeAppPassword strips whitespace from a pasted app password when the
// de-whitespaced token has the expected fixed length. Passwords that contain
// whitespace but do not look like grouped app passwords are kept as-is,
// aside from outer trimming.
func NormalizeAppPassword(raw string) string {
	trimmed := strings.TrimSpace(raw)
	stripped := strings.Join(strings.Fields(trimmed), "")
	if stripped != trimmed && len(stripped) == appPasswordLength {
		return stripped
	}
	return trimmed
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "off", "disabled", "none":
		return RateLimitConfig{}, nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
	}
	return ""
}

func parseBool(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
