package knowledge

import (
	"context"
	"sync"

	domain "jan-server/services/support-api/internal/domain/knowledge"
)

// InMemoryRepository serves a fixed set of entries. Useful for demos/tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []domain.FAQEntry
}

// NewInMemoryRepository copies the given entries.
func NewInMemoryRepository(entries ...domain.FAQEntry) *InMemoryRepository {
	return &InMemoryRepository{entries: append([]domain.FAQEntry(nil), entries...)}
}

var _ domain.Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) ListFAQs(ctx context.Context) ([]domain.FAQEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FAQEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Store appends an entry.
func (r *InMemoryRepository) Store(entry domain.FAQEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}
