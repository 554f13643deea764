package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/loveplan/backend/internal/domain"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port               int
	SMTP               SMTPConfig
	MailTo             string
	CORSOrigins        []string
	StaticDir          string
	RateLimitPerMinute int
	BodyLimitBytes     int64
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS
	User     string
	Pass     string
	FromName string
}

// Validate checks that the transport credentials are present.
func (c SMTPConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if len(missing) > 0 {
		return domain.ErrMissingTransportConfig(strings.Join(missing, "/"))
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
// Missing SMTP credentials are not an error here; the plan handler reports
// them per request.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("PORT must be a number: %w", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT must be a number: %w", err)
	}

	rpm, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "10"))
	if err != nil || rpm <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive number, got %q", os.Getenv("RATE_LIMIT_PER_MINUTE"))
	}

	bodyLimit, err := strconv.ParseInt(getEnv("BODY_LIMIT_BYTES", "204800"), 10, 64)
	if err != nil || bodyLimit <= 0 {
		return nil, fmt.Errorf("BODY_LIMIT_BYTES must be a positive number, got %q", os.Getenv("BODY_LIMIT_BYTES"))
	}

	var origins []string
	if raw := getEnv("CORS_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port: port,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Secure:   getEnv("SMTP_SECURE", "true") == "true",
			User:     os.Getenv("SMTP_USER"),
			Pass:     os.Getenv("SMTP_PASS"),
			FromName: getEnv("MAIL_FROM_NAME", "Love Plan"),
		},
		MailTo:             os.Getenv("MAIL_TO"),
		CORSOrigins:        origins,
		StaticDir:          getEnv("STATIC_DIR", "public"),
		RateLimitPerMinute: rpm,
		BodyLimitBytes:     bodyLimit,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
