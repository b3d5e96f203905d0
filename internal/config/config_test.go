package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, "24h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "@yearly", cfg.Cron.LeaveResetSchedule)
	assert.Equal(t, time.Minute, cfg.Redis.DirectoryTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EmptyResetScheduleDisablesJob(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEAVE_RESET_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Cron.LeaveResetSchedule)
}

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "pw", Name: "hr", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:pw@db:5433/hr?sslmode=disable", cfg.DatabaseURL())
}

func TestConfig_LogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	cfg.App.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}
