//go:build integration
// +build integration

package database_test

import (
	"os"
	"testing"

	"teampulse-backend/internal/database"
	"teampulse-backend/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain purges the shared Postgres container once the package is done
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestEnsureExtensions(t *testing.T) {
	base := testutils.SetupTestSuite(t)

	t.Run("creates pgcrypto", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		database.EnsureExtensions(base.DB)

		var count int64
		require.NoError(t, base.DB.Raw(`SELECT COUNT(*) FROM pg_extension WHERE extname = 'pgcrypto'`).Scan(&count).Error)
		assert.Equal(t, int64(1), count)
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("logs failure instead of dropping it", func(t *testing.T) {
		db, err := database.Initialize(base.Config.DatabaseURL, nil)
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		hook := test.NewGlobal()
		defer hook.Reset()

		database.EnsureExtensions(db)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "Could not create pgcrypto extension", entry.Message)
		assert.Error(t, entry.Data[logrus.ErrorKey].(error))
	})
}
