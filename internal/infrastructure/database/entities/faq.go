package entities

import (
	"time"

	"jan-server/services/support-api/internal/domain/knowledge"
)

// FAQ is a knowledge base row seeded at startup.
type FAQ struct {
	ID        uint      `gorm:"primaryKey"`
	PublicID  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Category  string    `gorm:"type:varchar(64);index;not null"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for FAQ.
func (FAQ) TableName() string {
	return "faq_knowledge"
}

func (f *FAQ) EtoD() knowledge.FAQEntry {
	return knowledge.FAQEntry{
		ID:        f.PublicID,
		Category:  f.Category,
		Question:  f.Question,
		Answer:    f.Answer,
		CreatedAt: f.CreatedAt,
	}
}
