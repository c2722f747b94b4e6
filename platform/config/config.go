// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Verification policies for the intake flow. The marketing site shipped with
// two competing variants of the form; the difference is collapsed into this
// single flag instead of parallel code paths.
const (
	// VerifyPolicyBookOnly requires the bot check only for the "book" intent.
	VerifyPolicyBookOnly = "book_only"
	// VerifyPolicyAlways requires the bot check for every submission.
	VerifyPolicyAlways = "always"
)

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// TurnstileConfig provides settings for the bot-verification collaborator.
type TurnstileConfig interface {
	GetTurnstileSecret() string
	GetVerifyPolicy() string
}

// SessionConfig provides settings for the wizard session store.
type SessionConfig interface {
	GetRedisURL() string
	GetSessionTTL() time.Duration
}

// EmailConfig provides settings for lead notification emails.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetLeadInboxAddress() string
}

// BookingConfig provides settings for the external scheduling provider.
type BookingConfig interface {
	GetBookingURL() string
}

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	DatabaseURL      string
	TurnstileSecret  string
	VerifyPolicy     string
	JWTAccessSecret  string
	RedisURL         string
	SessionTTL       time.Duration
	CORSAllowAll     bool
	CORSOrigins      []string
	BookingURL       string
	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	LeadInboxAddress string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// TurnstileConfig implementation
func (c *Config) GetTurnstileSecret() string { return c.TurnstileSecret }
func (c *Config) GetVerifyPolicy() string    { return c.VerifyPolicy }

// JWTConfig implementation (httpkit.JWTConfig)
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HasAdminAuth reports whether the admin routes can be mounted.
func (c *Config) HasAdminAuth() bool { return c.JWTAccessSecret != "" }

// SessionConfig implementation
func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// BookingConfig implementation
func (c *Config) GetBookingURL() string { return c.BookingURL }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool        { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string          { return c.SMTPHost }
func (c *Config) GetSMTPPort() int             { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string      { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string      { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string     { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string  { return c.EmailFromAddress }
func (c *Config) GetLeadInboxAddress() string  { return c.LeadInboxAddress }

// Load reads configuration from environment variables.
// The store URL and the bot-verification secret are hard requirements: their
// absence fails load instead of silently skipping validation downstream.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		TurnstileSecret:  getEnv("TURNSTILE_SECRET_KEY", ""),
		VerifyPolicy:     strings.ToLower(getEnv("VERIFY_POLICY", VerifyPolicyBookOnly)),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		SessionTTL:       mustDuration(getEnv("WIZARD_SESSION_TTL", "24h")),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		BookingURL:       getEnv("BOOKING_URL", "https://calendly.com/elessenlabs/product_clarity_call"),
		EmailEnabled:     emailEnabled && smtpHost != "",
		SMTPHost:         smtpHost,
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Studio Leads"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", ""),
		LeadInboxAddress: getEnv("LEAD_INBOX_ADDRESS", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.TurnstileSecret == "" {
		return nil, fmt.Errorf("TURNSTILE_SECRET_KEY is required")
	}
	if cfg.VerifyPolicy != VerifyPolicyBookOnly && cfg.VerifyPolicy != VerifyPolicyAlways {
		return nil, fmt.Errorf("VERIFY_POLICY must be %q or %q", VerifyPolicyBookOnly, VerifyPolicyAlways)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("WIZARD_SESSION_TTL must be a positive duration")
	}
	if cfg.EmailEnabled && (cfg.EmailFromAddress == "" || cfg.LeadInboxAddress == "") {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS and LEAD_INBOX_ADDRESS are required when email is enabled")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
