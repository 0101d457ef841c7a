package knowledge

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	domain "jan-server/services/support-api/internal/domain/knowledge"
	"jan-server/services/support-api/internal/infrastructure/database"
	"jan-server/services/support-api/internal/infrastructure/database/entities"
)

func TestGormRepository_ListFAQs_Seeded(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Prepare(ctx, db, zerolog.Nop()))

	seed, err := database.DefaultFAQs()
	require.NoError(t, err)

	entries, err := NewGormRepository(db).ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, entries, len(seed))

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Category, entries[i].Category)
	}
	for _, entry := range entries {
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Question)
		assert.NotEmpty(t, entry.Answer)
	}
}

func TestGormRepository_ListFAQs_OrderWithinCategory(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(ctx, db, zerolog.Nop()))

	rows := []entities.FAQ{
		{PublicID: "f1", Category: "shipping", Question: "First?", Answer: "1"},
		{PublicID: "f2", Category: "returns", Question: "Second?", Answer: "2"},
		{PublicID: "f3", Category: "shipping", Question: "Third?", Answer: "3"},
	}
	require.NoError(t, db.Create(&rows).Error)

	entries, err := NewGormRepository(db).ListFAQs(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"f2", "f1", "f3"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestGormRepository_ListFAQs_Empty(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(ctx, db, zerolog.Nop()))

	entries, err := NewGormRepository(db).ListFAQs(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInMemoryRepository_ListFAQs(t *testing.T) {
	repo := NewInMemoryRepository(domain.FAQEntry{ID: "a", Question: "Q?", Answer: "A."})
	repo.Store(domain.FAQEntry{ID: "b", Question: "Q2?", Answer: "A2."})

	entries, err := repo.ListFAQs(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries[0].ID = "mutated"
	again, err := repo.ListFAQs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].ID)
}
