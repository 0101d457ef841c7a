package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"jan-server/services/support-api/internal/infrastructure/database/entities"
)

//go:embed faq_seed.yaml
var faqSeedYAML []byte

// SeedFAQ is one knowledge base row in the seed document.
type SeedFAQ struct {
	Category string `yaml:"category"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type seedDocument struct {
	FAQs []SeedFAQ `yaml:"faqs"`
}

// DefaultFAQs parses the embedded seed document.
func DefaultFAQs() ([]SeedFAQ, error) {
	return ParseFAQs(faqSeedYAML)
}

// ParseFAQs decodes a seed document.
func ParseFAQs(raw []byte) ([]SeedFAQ, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode faq seed: %w", err)
	}
	for i, faq := range doc.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			return nil, fmt.Errorf("faq seed entry %d: question and answer are required", i)
		}
		if doc.FAQs[i].Category == "" {
			doc.FAQs[i].Category = "general"
		}
	}
	return doc.FAQs, nil
}

// SeedFAQs inserts the default knowledge base when faq_knowledge is empty and reports how
// many rows were written.
func SeedFAQs(ctx context.Context, db *gorm.DB, log zerolog.Logger) (int, error) {
	faqs, err := DefaultFAQs()
	if err != nil {
		return 0, err
	}
	return seedFAQs(ctx, db, log, faqs)
}

func seedFAQs(ctx context.Context, db *gorm.DB, log zerolog.Logger, faqs []SeedFAQ) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entities.FAQ{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		log.Debug().Int64("rows", count).Msg("faq table already seeded")
		return 0, nil
	}

	rows := make([]entities.FAQ, 0, len(faqs))
	for _, faq := range faqs {
		rows = append(rows, entities.FAQ{
			PublicID: uuid.NewString(),
			Category: faq.Category,
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, err
	}

	log.Info().Int("rows", len(rows)).Msg("seeded faq knowledge base")
	return len(rows), nil
}
