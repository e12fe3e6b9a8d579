// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"waste-service/internal/config"
	"waste-service/internal/db"
)

// New returns a migrated database backed by a file in t.TempDir. It is
// closed when the test finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DB: config.DBConfig{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "waste.db"),
		},
	}

	database, err := db.New(cfg, zerolog.New(io.Discard))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close(database)
	})
	return database
}
