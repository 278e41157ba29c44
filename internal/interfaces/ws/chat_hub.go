package ws

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/application/chat"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
)

// ChatHub fans live support-chat messages out to everyone watching a
// room. Rooms are keyed by customer id; a customer watches their own
// room, staff may watch any room. Messages are persisted through the
// chat service before broadcasting, so the history pane and the live
// feed never diverge.
type ChatHub struct {
	clients    map[uuid.UUID]map[*websocket.Conn]bool
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	service    *chat.ChatService
	logger     *zap.Logger
}

type subscription struct {
	conn   *websocket.Conn
	roomID uuid.UUID
	userID uuid.UUID
}

type broadcastMessage struct {
	roomID  uuid.UUID
	message *chat.MessageResponse
}

// NewChatHub creates a hub backed by the given chat service
func NewChatHub(service *chat.ChatService, logger *zap.Logger) *ChatHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHub{
		clients:    make(map[uuid.UUID]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		service:    service,
		logger:     logger,
	}
}

// Run processes register, unregister and broadcast events until the
// process exits. Call it once from a goroutine at startup.
func (h *ChatHub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.roomID] == nil {
				h.clients[sub.roomID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.roomID][sub.conn] = true

		case sub := <-h.unregister:
			if _, ok := h.clients[sub.roomID][sub.conn]; ok {
				delete(h.clients[sub.roomID], sub.conn)
				sub.conn.Close()
			}
			if len(h.clients[sub.roomID]) == 0 {
				delete(h.clients, sub.roomID)
			}

		case msg := <-h.broadcast:
			for conn := range h.clients[msg.roomID] {
				if err := conn.WriteJSON(msg.message); err != nil {
					h.logger.Warn("websocket write failed", zap.Error(err))
					conn.Close()
					delete(h.clients[msg.roomID], conn)
				}
			}
		}
	}
}

// Broadcast fans an already persisted message out to everyone watching
// the room. REST posts go through here too, so websocket watchers see
// lines regardless of how they were sent.
func (h *ChatHub) Broadcast(roomID uuid.UUID, message *chat.MessageResponse) {
	h.broadcast <- broadcastMessage{roomID: roomID, message: message}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handle upgrades GET /ws/chat/:room_id to a websocket session. The
// route sits behind the JWT middleware, so claims are already in the
// context; room access is enforced by the chat service on every post
// and checked once here for the subscription itself.
func (h *ChatHub) Handle(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("room_id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "error": gin.H{"code": "BAD_REQUEST", "message": "Invalid room ID"}})
		return
	}
	userID, ok := middleware.GetJWTUserUUID(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	// Reading history doubles as the access check for the room.
	if _, err := h.service.History(c.Request.Context(), roomID, userID, 1); err != nil {
		c.JSON(403, gin.H{"success": false, "error": gin.H{"code": "FORBIDDEN", "message": "You cannot join this chat room"}})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := subscription{conn: conn, roomID: roomID, userID: userID}
	h.register <- sub

	go h.listen(sub)
}

// listen reads messages from one client until the connection drops
func (h *ChatHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		_, data, err := sub.conn.ReadMessage()
		if err != nil {
			return
		}

		var payload chat.PostMessageRequest
		if err := json.Unmarshal(data, &payload); err != nil {
			h.logger.Warn("invalid chat payload", zap.Error(err))
			continue
		}

		message, err := h.service.Post(context.Background(), sub.roomID, sub.userID, payload)
		if err != nil {
			h.logger.Warn("chat message rejected",
				zap.String("room_id", sub.roomID.String()),
				zap.Error(err))
			continue
		}

		h.broadcast <- broadcastMessage{roomID: sub.roomID, message: message}
	}
}
