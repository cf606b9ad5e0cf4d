package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecomportal/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		Primary:  config.Primary{Env: "production"},
		Database: config.DatabaseConfig{Path: path},
	}
}

func TestNew_CreatesFileAndSchema(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "store.db")

	db, err := New(testConfig(path), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = os.Stat(path)
	require.NoError(t, err)

	for _, table := range []string{"customers", "orders", "order_items"} {
		assert.True(t, db.DB.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestNew_ReopensExistingFile(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "store.db")

	first, err := New(testConfig(path), &log)
	require.NoError(t, err)

	seed := &Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, first.DB.Create(seed).Error)
	require.NoError(t, first.Close())

	second, err := New(testConfig(path), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	var found Customer
	require.NoError(t, second.DB.First(&found, seed.ID).Error)
	assert.Equal(t, "alice@example.com", found.Email)
}

func TestPing(t *testing.T) {
	log := zerolog.Nop()
	db, err := New(testConfig(":memory:"), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.NoError(t, db.Ping(context.Background()))
}

func TestForeignKeysEnforced(t *testing.T) {
	log := zerolog.Nop()
	db, err := New(testConfig(":memory:"), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// An order pointing at a customer that does not exist must be rejected at
	// the store level, not just by the service check.
	err = db.DB.Create(&Order{CustomerID: 42, TotalCost: 1}).Error
	assert.Error(t, err)
}
