package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jan-server/services/support-api/internal/infrastructure/database/entities"
)

func TestPrepare_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(Config{Driver: DriverSQLite, DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Prepare(ctx, db, zerolog.Nop()))

	expected, err := DefaultFAQs()
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.FAQ{}).Count(&count).Error)
	assert.Equal(t, int64(len(expected)), count)

	// A restart runs the same steps again; the seed must not duplicate rows.
	require.NoError(t, Prepare(ctx, db, zerolog.Nop()))
	written, err := SeedFAQs(ctx, db, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, written)

	require.NoError(t, db.Model(&entities.FAQ{}).Count(&count).Error)
	assert.Equal(t, int64(len(expected)), count)
}

func TestPrepare_SkipsSeedWhenTableHasRows(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(Config{Driver: DriverSQLite, DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(ctx, db, zerolog.Nop()))
	require.NoError(t, db.Create(&entities.FAQ{PublicID: "custom", Category: "custom", Question: "Q?", Answer: "A."}).Error)

	written, err := SeedFAQs(ctx, db, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestParseFAQs(t *testing.T) {
	faqs, err := ParseFAQs([]byte("faqs:\n  - question: Q?\n    answer: A.\n"))
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	assert.Equal(t, "general", faqs[0].Category)

	_, err = ParseFAQs([]byte("faqs:\n  - question: Missing answer\n"))
	assert.Error(t, err)
}

func TestDefaultFAQs_NotEmpty(t *testing.T) {
	faqs, err := DefaultFAQs()
	require.NoError(t, err)
	assert.NotEmpty(t, faqs)
	for _, faq := range faqs {
		assert.NotEmpty(t, faq.Category)
	}
}

func TestConnect_RejectsUnknownDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "mysql", DSN: "user@/db"})
	assert.Error(t, err)
}

func TestEnsureDatabaseExists_IgnoresNonURLDSN(t *testing.T) {
	assert.NoError(t, ensureDatabaseExists("host=localhost user=postgres dbname=support"))
	assert.Equal(t, `"we""ird"`, pqQuoteIdentifier(`we"ird`))
}

func TestConnect_SQLiteFileCommitsAfterPragmas(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(Config{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "chat.db"), LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var mode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)

	require.NoError(t, Prepare(ctx, db, zerolog.Nop()))

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entities.Conversation{PublicID: "conv-1"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
