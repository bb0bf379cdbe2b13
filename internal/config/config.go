package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	PublicBaseURL      string
	LogLevel           string
	SiteName           string
	SitePhone          string
	CORSAllowedOrigins []string

	// IntakeDelay is the artificial pause before the intake endpoint answers.
	// Zero disables it.
	IntakeDelay time.Duration

	// AdminJWTSecret protects /admin and /api/admin when set. Empty leaves the
	// admin surface open.
	AdminJWTSecret string

	GoogleMapsAPIKey string
	MetricsEnabled   bool

	// Lead notification
	NotifyRecipients []string
	NotifyTimezone   string
	NotifyTimeout    time.Duration

	// SendGrid Email Configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// AWS SES Email Configuration
	SESFromEmail        string
	SESFromName         string
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		SiteName:           getEnv("SITE_NAME", "Cash Home Buyers"),
		SitePhone:          getEnv("SITE_PHONE", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
		IntakeDelay:        getEnvAsDuration("INTAKE_DELAY", time.Second),
		AdminJWTSecret:     strings.TrimSpace(getEnv("ADMIN_JWT_SECRET", "")),
		GoogleMapsAPIKey:   getEnv("GOOGLE_MAPS_API_KEY", ""),
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),

		NotifyRecipients: getEnvAsList("NOTIFY_RECIPIENTS", nil),
		NotifyTimezone:   getEnv("NOTIFY_TIMEZONE", "America/New_York"),
		NotifyTimeout:    getEnvAsDuration("NOTIFY_TIMEOUT", 15*time.Second),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Cash Offer Leads"),

		SESFromEmail:        getEnv("SES_FROM_EMAIL", ""),
		SESFromName:         getEnv("SES_FROM_NAME", "Cash Offer Leads"),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// AdminAuthEnabled reports whether admin routes require a bearer token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminJWTSecret != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping blank entries.
func getEnvAsList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
