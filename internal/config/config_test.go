package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "leads.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "booking_submissions", cfg.BookingTable)
	assert.Equal(t, "contact_submissions", cfg.ContactTable)
	assert.False(t, cfg.FailOnPersistError)
	assert.Equal(t, 10*time.Second, cfg.EffectTimeout)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, 587, cfg.Email.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/leads")
	t.Setenv("BOOKING_TABLE_NAME", "booking_leads")
	t.Setenv("CONTACT_TABLE_NAME", "contact_leads")
	t.Setenv("FAIL_ON_PERSIST_ERROR", "true")
	t.Setenv("EFFECT_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://brightway.example,https://www.brightway.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "booking_leads", cfg.BookingTable)
	assert.Equal(t, "contact_leads", cfg.ContactTable)
	assert.True(t, cfg.FailOnPersistError)
	assert.Equal(t, 3*time.Second, cfg.EffectTimeout)
	assert.Equal(t, []string{"https://brightway.example", "https://www.brightway.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEmailEnabledRequiresSMTPSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "leads.db")
	t.Setenv("EMAIL_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_SMTP_HOST")

	t.Setenv("EMAIL_SMTP_HOST", "smtp.example.com")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_FROM")

	t.Setenv("EMAIL_FROM", "noreply@brightway.example")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BUSINESS_EMAIL")

	t.Setenv("BUSINESS_EMAIL", "ops@brightway.example")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "smtp.example.com", cfg.Email.Host)
}
