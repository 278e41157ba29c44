package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/application/chat"
)

// MessageBroadcaster pushes a persisted message to live watchers of a
// room. The websocket hub implements it.
type MessageBroadcaster interface {
	Broadcast(roomID uuid.UUID, message *chat.MessageResponse)
}

// ChatHandler handles the support-chat REST endpoints. Live delivery
// runs over the websocket hub; these endpoints back the history pane
// and the staff inbox, and posts are forwarded to the hub so open
// sessions see them too.
type ChatHandler struct {
	BaseHandler
	chatService *chat.ChatService
	broadcaster MessageBroadcaster
}

// NewChatHandler creates a new chat handler. A nil broadcaster disables
// live fan-out of REST posts.
func NewChatHandler(chatService *chat.ChatService, broadcaster MessageBroadcaster) *ChatHandler {
	return &ChatHandler{chatService: chatService, broadcaster: broadcaster}
}

// History returns the latest lines of a room
func (h *ChatHandler) History(c *gin.Context) {
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	roomID, err := uuid.Parse(c.Param("room_id"))
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := h.chatService.History(c.Request.Context(), roomID, requesterID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, messages)
}

// Post records a chat line
func (h *ChatHandler) Post(c *gin.Context) {
	senderID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	roomID, err := uuid.Parse(c.Param("room_id"))
	if err != nil {
		h.BadRequest(c, "Invalid room ID")
		return
	}

	var req chat.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	message, err := h.chatService.Post(c.Request.Context(), roomID, senderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if h.broadcaster != nil {
		h.broadcaster.Broadcast(roomID, message)
	}
	h.Created(c, message)
}

// ActiveRooms lists rooms with recent traffic for the staff inbox
func (h *ChatHandler) ActiveRooms(c *gin.Context) {
	rooms, err := h.chatService.ActiveRooms(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rooms)
}
