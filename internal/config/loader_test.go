package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("H4P_JWT_SECRET", "unit-test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unit-test-secret", cfg.JWT.Secret)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 86400, cfg.JWT.TokenTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.LoginAttempts)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("H4P_JWT_SECRET", "unit-test-secret")
	t.Setenv("H4P_SERVER_PORT", "9090")
	t.Setenv("H4P_DATABASE_DRIVER", "sqlite")
	t.Setenv("H4P_RATE_LIMIT_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadConfig_MissingSecretRejected(t *testing.T) {
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestValidate_UnknownDriverRejected(t *testing.T) {
	cfg := &Config{
		JWT:      JWTConfig{Secret: "x", TokenTTL: 60},
		Database: DatabaseConfig{Driver: "oracle"},
	}
	assert.Error(t, cfg.Validate())
}
