package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu            sync.RWMutex
	now           func() time.Time
	conversations map[string]*domain.Conversation
	messages      map[string][]domain.Message
}

// NewInMemoryRepository creates an empty store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		now:           func() time.Time { return time.Now().UTC() },
		conversations: make(map[string]*domain.Conversation),
		messages:      make(map[string][]domain.Message),
	}
}

var _ domain.Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	conv := &domain.Conversation{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	r.conversations[conv.ID] = conv
	copied := *conv
	return &copied, nil
}

func (r *InMemoryRepository) FindConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, nil
	}
	copied := *conv
	return &copied, nil
}

func (r *InMemoryRepository) TouchConversation(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conv, ok := r.conversations[id]; ok {
		conv.UpdatedAt = r.now()
	}
	return nil
}

func (r *InMemoryRepository) CreateMessage(ctx context.Context, conversationID string, sender domain.Sender, text string) (*domain.Message, error) {
	if !sender.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation, "unknown message sender: "+string(sender), nil, "c4e6a8b0-2d4f-4a6b-8c0e-2f4a6b8c0d2e")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[conversationID]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "conversation not found", nil, "d5f7b9c1-3e5a-4b7c-9d1f-3a5b7c9d1e3f")
	}

	now := r.now()
	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		CreatedAt:      now,
	}
	r.messages[conversationID] = append(r.messages[conversationID], msg)
	conv.UpdatedAt = now
	return &msg, nil
}

func (r *InMemoryRepository) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[conversationID]
	out := make([]domain.Message, len(stored))
	copy(out, stored)
	return out, nil
}
