package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/chat"
	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/shared"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	activeRoomWindow    = 7 * 24 * time.Hour
)

// PostMessageRequest sends a chat line
type PostMessageRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

// MessageResponse represents a chat line in API and socket payloads
type MessageResponse struct {
	ID         uuid.UUID     `json:"id"`
	RoomID     uuid.UUID     `json:"room_id"`
	SenderID   uuid.UUID     `json:"sender_id"`
	SenderRole identity.Role `json:"sender_role"`
	SenderName string        `json:"sender_name,omitempty"`
	Body       string        `json:"body"`
	SentAt     time.Time     `json:"sent_at"`
}

// ToMessageResponse maps a message to its response shape
func ToMessageResponse(m *chat.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		RoomID:     m.RoomID,
		SenderID:   m.SenderID,
		SenderRole: m.SenderRole,
		SenderName: m.SenderName,
		Body:       m.Body,
		SentAt:     m.SentAt,
	}
}

// ChatService handles the support chat between customers and staff.
// Each room is keyed by the customer id that owns it.
type ChatService struct {
	messageRepo chat.MessageRepository
	userRepo    identity.UserRepository
}

// NewChatService creates a new ChatService
func NewChatService(messageRepo chat.MessageRepository, userRepo identity.UserRepository) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Post records a chat line from the given sender. Customers may only
// write to their own room; back-office roles may write to any room.
func (s *ChatService) Post(ctx context.Context, roomID, senderID uuid.UUID, req PostMessageRequest) (*MessageResponse, error) {
	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !s.canAccessRoom(sender, roomID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You cannot write to this chat room")
	}

	message, err := chat.NewMessage(roomID, sender.ID, sender.Role, sender.FullName, req.Body)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}
	resp := ToMessageResponse(message)
	return &resp, nil
}

// History returns the latest lines of a room in chronological order
func (s *ChatService) History(ctx context.Context, roomID, requesterID uuid.UUID, limit int) ([]MessageResponse, error) {
	requester, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !s.canAccessRoom(requester, roomID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You cannot read this chat room")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	messages, err := s.messageRepo.FindByRoom(ctx, roomID, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = ToMessageResponse(&messages[i])
	}
	return responses, nil
}

// ActiveRooms lists rooms with recent traffic for the back-office
// inbox
func (s *ChatService) ActiveRooms(ctx context.Context) ([]uuid.UUID, error) {
	return s.messageRepo.ActiveRooms(ctx, time.Now().Add(-activeRoomWindow))
}

func (s *ChatService) canAccessRoom(user *identity.User, roomID uuid.UUID) bool {
	if user.Role.IsBackOffice() {
		return true
	}
	return user.ID == roomID
}
