package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "main", cfg.DatabaseID)
	assert.Equal(t, "users", cfg.UsersCollectionID)
	assert.Equal(t, 15*time.Minute, cfg.OTPExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "doc-session", cfg.SessionCookieName)
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_ID", "docs-db")
	t.Setenv("OTP_EXPIRY", "5m")
	t.Setenv("JWT_EXPIRY_DAYS", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()
	assert.Equal(t, "docs-db", cfg.DatabaseID)
	assert.Equal(t, 5*time.Minute, cfg.OTPExpiry)
	assert.Equal(t, 48*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("OTP_EXPIRY", "soon")
	t.Setenv("JWT_EXPIRY_DAYS", "week")

	cfg := Load()
	assert.Equal(t, 15*time.Minute, cfg.OTPExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
}
