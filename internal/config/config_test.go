package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiration())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "changeme")

	_, err := Load()
	assert.Error(t, err)
}
