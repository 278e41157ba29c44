package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/chat"
)

// GormChatRepository implements chat.MessageRepository using GORM
type GormChatRepository struct {
	db *gorm.DB
}

// NewGormChatRepository creates a new GormChatRepository
func NewGormChatRepository(db *gorm.DB) *GormChatRepository {
	return &GormChatRepository{db: db}
}

// Save persists a chat message
func (r *GormChatRepository) Save(ctx context.Context, message *chat.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindByRoom loads the most recent messages of a room in chronological order
func (r *GormChatRepository) FindByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]chat.Message, error) {
	if limit < 1 {
		limit = 50
	}
	var messages []chat.Message
	if err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	// Reverse into chronological order for display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ActiveRooms lists rooms with traffic since the given time, for the
// back-office chat panel
func (r *GormChatRepository) ActiveRooms(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	var rooms []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&chat.Message{}).
		Where("sent_at >= ?", since).
		Distinct("room_id").
		Pluck("room_id", &rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
