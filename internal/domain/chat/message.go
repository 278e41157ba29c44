package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// Message is one line of the support chat. The room is keyed by the
// customer id: the customer and every staff member watching that room
// share it.
type Message struct {
	shared.BaseEntity
	RoomID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID     `gorm:"type:uuid;not null"`
	SenderRole identity.Role `gorm:"type:varchar(20);not null"`
	SenderName string        `gorm:"type:varchar(150)"`
	Body       string        `gorm:"type:varchar(2000);not null"`
	SentAt     time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "chat_messages"
}

// NewMessage records a chat line in a room
func NewMessage(roomID, senderID uuid.UUID, senderRole identity.Role, senderName, body string) (*Message, error) {
	if roomID == uuid.Nil || senderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Chat message must carry a room and a sender")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, shared.NewDomainError("EMPTY_MESSAGE", "Chat message cannot be empty")
	}
	return &Message{
		BaseEntity: shared.NewBaseEntity(),
		RoomID:     roomID,
		SenderID:   senderID,
		SenderRole: senderRole,
		SenderName: senderName,
		Body:       body,
		SentAt:     time.Now(),
	}, nil
}

// MessageRepository defines the interface for chat history persistence
type MessageRepository interface {
	Save(ctx context.Context, message *Message) error
	FindByRoom(ctx context.Context, roomID uuid.UUID, limit int) ([]Message, error)
	ActiveRooms(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}
