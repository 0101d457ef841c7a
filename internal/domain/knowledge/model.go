package knowledge

import (
	"context"
	"time"
)

// FAQEntry is static reference data used to ground replies.
type FAQEntry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository exposes read access to the FAQ table.
type Repository interface {
	ListFAQs(ctx context.Context) ([]FAQEntry, error)
}
