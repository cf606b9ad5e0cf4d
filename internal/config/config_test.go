package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "ecommerce.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ECOMMERCE_SERVER.PORT", "9000")
	t.Setenv("ECOMMERCE_DATABASE.PATH", "/tmp/store.db")
	t.Setenv("ECOMMERCE_PRIMARY.ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/tmp/store.db", cfg.Database.Path)
	assert.Equal(t, "production", cfg.Primary.Env)

	// Untouched settings keep their defaults.
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ECOMMERCE_PRIMARY.ENV", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}
