package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/infrastructure/database/entities"
	"jan-server/services/support-api/internal/infrastructure/metrics"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

// GormRepository persists conversations and messages via GORM (SQLite or PostgreSQL).
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the provided DB.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ domain.Repository = (*GormRepository)(nil)

func (r *GormRepository) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	defer observe("create_conversation", time.Now())

	record := entities.Conversation{PublicID: uuid.NewString()}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, dbError(ctx, err, "create conversation", "0a4d2f61-6b8e-4c1f-9d53-2e7b8c9a0f14")
	}
	metrics.RecordConversationCreated()
	return record.EtoD(), nil
}

func (r *GormRepository) FindConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	defer observe("find_conversation", time.Now())

	record, err := findConversation(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, dbError(ctx, err, "find conversation", "5b1e9c07-3a2d-4f6e-8b4c-1d0e2f3a4b5c")
	}
	if record == nil {
		return nil, nil
	}
	return record.EtoD(), nil
}

func (r *GormRepository) TouchConversation(ctx context.Context, id string) error {
	defer observe("touch_conversation", time.Now())

	if err := touch(r.db.WithContext(ctx), id); err != nil {
		return dbError(ctx, err, "touch conversation", "7c3f1a2b-4d5e-4f60-9a1b-2c3d4e5f6a7b")
	}
	return nil
}

func (r *GormRepository) CreateMessage(ctx context.Context, conversationID string, sender domain.Sender, text string) (*domain.Message, error) {
	defer observe("create_message", time.Now())

	if !sender.Valid() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeValidation, "unknown message sender: "+string(sender), nil, "2f6b8d0e-1a3c-4e5f-8a7b-9c0d1e2f3a4b")
	}

	var record entities.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner, err := findConversation(tx, conversationID)
		if err != nil {
			return err
		}
		if owner == nil {
			return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "conversation not found", nil, "8e0a2c4d-6f7b-4a9c-8d1e-3f5a7b9c1d2e")
		}

		record = entities.Message{
			PublicID:       uuid.NewString(),
			ConversationID: owner.ID,
			Sender:         string(sender),
			Text:           text,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return touch(tx, conversationID)
	})
	if err != nil {
		if platformerrors.GetPlatformError(err) != nil {
			return nil, err
		}
		return nil, dbError(ctx, err, "create message", "3d5f7a9b-1c2e-4d4f-9a6b-8c0d2e4f6a8b")
	}

	metrics.RecordMessagePersisted(string(sender))
	message := record.EtoD(conversationID)
	return &message, nil
}

func (r *GormRepository) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	defer observe("list_messages", time.Now())

	var records []entities.Message
	err := r.db.WithContext(ctx).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.public_id = ?", conversationID).
		Order("messages.created_at ASC").
		Order("messages.id ASC").
		Find(&records).Error
	if err != nil {
		return nil, dbError(ctx, err, "list messages", "6a8c0e2f-4b6d-4f8a-9c1e-5d7f9b1d3f5a")
	}

	messages := make([]domain.Message, 0, len(records))
	for i := range records {
		messages = append(messages, records[i].EtoD(conversationID))
	}
	return messages, nil
}

func findConversation(db *gorm.DB, publicID string) (*entities.Conversation, error) {
	var record entities.Conversation
	err := db.Where("public_id = ?", publicID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// touch bumps updated_at. A vanished conversation matches no rows and is not an error.
func touch(db *gorm.DB, publicID string) error {
	return db.Model(&entities.Conversation{}).
		Where("public_id = ?", publicID).
		UpdateColumn("updated_at", db.NowFunc()).Error
}

func dbError(ctx context.Context, err error, message, errorUUID string) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, message, err, errorUUID)
}

func observe(queryType string, started time.Time) {
	metrics.RecordDBQuery(queryType, time.Since(started).Seconds())
}
