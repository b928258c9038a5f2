package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all application-level configuration loaded from environment variables.
type AppConfig struct {
	// Port is the HTTP server port. Defaults to 8990.
	Port int `envconfig:"PORT" default:"8990"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFile, when set, sends logs to a size-rotated file instead of stderr.
	LogFile string `envconfig:"LOG_FILE"`

	SMTP SMTPConfig
}

// SMTPConfig holds the delivery settings for the outgoing notification email.
// Host, Port, Username, Password, and Recipient are all required before any
// mail can be sent; their absence is reported by Validate, not at load time,
// so that a misconfigured process still answers requests with a proper error.
type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST"`
	Port      int    `envconfig:"SMTP_PORT"`
	Username  string `envconfig:"SMTP_USERNAME"`
	Password  string `envconfig:"SMTP_PASSWORD"`
	Recipient string `envconfig:"NOTIFY_RECIPIENT"`

	// From overrides the sender address. Defaults to Username.
	From string `envconfig:"SMTP_FROM"`

	// Encryption selects the TLS policy: "none", "starttls", or "ssl_tls".
	Encryption string `envconfig:"SMTP_ENCRYPTION" default:"starttls"`
}

// Load reads AppConfig from environment variables using envconfig.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}

// Validate reports the required delivery settings that are absent. A non-nil
// error means no mail can be sent and the caller must fail closed.
func (c SMTPConfig) Validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if c.Username == "" {
		missing = append(missing, "SMTP_USERNAME")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if c.Recipient == "" {
		missing = append(missing, "NOTIFY_RECIPIENT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing SMTP settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Sender returns the From address, falling back to the SMTP username.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
