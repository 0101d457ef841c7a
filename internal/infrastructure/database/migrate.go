package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"jan-server/services/support-api/internal/infrastructure/database/entities"
)

// AutoMigrate creates any missing tables and indexes. It is safe to run on every start.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Conversation{},
		&entities.Message{},
		&entities.FAQ{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}

// Prepare migrates the schema and seeds the knowledge base.
func Prepare(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := AutoMigrate(ctx, db, log); err != nil {
		return err
	}
	_, err := SeedFAQs(ctx, db, log)
	return err
}
