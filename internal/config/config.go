package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration. It is loaded once in main and
// handed to constructors explicitly; nothing below main reads the environment.
type Config struct {
	// HTTPAddr is the listen address for the API server.
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// DatabaseURL selects Postgres (postgres:// prefix) or a sqlite file/DSN.
	DatabaseURL string `env:"DATABASE_URL"`

	// BookingTable and ContactTable override the intake table names.
	// The careers table is fixed in code.
	BookingTable string `env:"BOOKING_TABLE_NAME" envDefault:"booking_submissions"`
	ContactTable string `env:"CONTACT_TABLE_NAME" envDefault:"contact_submissions"`

	Email EmailConfig `envPrefix:"EMAIL_"`

	// BusinessEmail receives the internal notification for every submission.
	BusinessEmail string `env:"BUSINESS_EMAIL"`

	// FailOnPersistError flips the pipeline from optimistic success to a 500
	// when the insert fails. Off by default.
	FailOnPersistError bool `env:"FAIL_ON_PERSIST_ERROR" envDefault:"false"`

	// EffectTimeout bounds each outbound call (insert, email send).
	EffectTimeout time.Duration `env:"EFFECT_TIMEOUT" envDefault:"10s"`

	// AdminToken protects the read-only admin endpoints. Empty disables them.
	AdminToken string `env:"ADMIN_TOKEN"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// EmailConfig holds the SMTP settings for the transactional mailer.
type EmailConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	UseTLS   bool   `env:"SMTP_TLS" envDefault:"false"`

	// From must be an identity the provider has verified.
	From string `env:"FROM"`
}

// Load reads .env (when present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}
	if c.Email.Enabled {
		if c.Email.Host == "" {
			return fmt.Errorf("EMAIL_SMTP_HOST is required when email is enabled")
		}
		if c.Email.From == "" {
			return fmt.Errorf("EMAIL_FROM is required when email is enabled")
		}
		if c.BusinessEmail == "" {
			return fmt.Errorf("BUSINESS_EMAIL is required when email is enabled")
		}
	}
	if c.EffectTimeout <= 0 {
		c.EffectTimeout = 10 * time.Second
	}
	return nil
}
