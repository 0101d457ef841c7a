package knowledge

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "jan-server/services/support-api/internal/domain/knowledge"
	"jan-server/services/support-api/internal/infrastructure/database/entities"
	"jan-server/services/support-api/internal/infrastructure/metrics"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

// GormRepository reads the faq_knowledge table.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ domain.Repository = (*GormRepository)(nil)

// ListFAQs returns every entry grouped by category, oldest first within a category.
func (r *GormRepository) ListFAQs(ctx context.Context) ([]domain.FAQEntry, error) {
	started := time.Now()
	defer func() { metrics.RecordDBQuery("list_faqs", time.Since(started).Seconds()) }()

	var records []entities.FAQ
	if err := r.db.WithContext(ctx).Order("category ASC").Order("id ASC").Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "list faq entries", err, "e6a8c0d2-4f6b-4c8d-a0e2-4b6c8d0e2f4a")
	}

	entries := make([]domain.FAQEntry, 0, len(records))
	for i := range records {
		entries = append(entries, records[i].EtoD())
	}
	return entries, nil
}
