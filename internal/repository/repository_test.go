package repository

import (
	"testing"

	"github.com/ecomportal/backend/internal/config"
	"github.com/ecomportal/backend/internal/database"
	"github.com/ecomportal/backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupTestServer builds an application container backed by a private
// in-memory SQLite database with the schema migrated.
func setupTestServer(t *testing.T) *server.Server {
	t.Helper()

	log := zerolog.Nop()
	cfg := &config.Config{
		Primary:  config.Primary{Env: "production"},
		Database: config.DatabaseConfig{Path: ":memory:"},
	}

	db, err := database.New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &server.Server{
		Config: cfg,
		Logger: &log,
		DB:     db,
	}
}
