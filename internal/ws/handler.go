// Package ws carries the realtime chat transport: it authenticates the
// websocket handshake, then reads one command per text frame and writes
// the chat response back as JSON.
package ws

import (
	"net/http"
	"strings"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/chat"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/ledger"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/metrics"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const welcomeMessage = "Welcome to Personal Finance Assistant! Type /help for available commands."

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the browser client is served from this same origin; tools like
	// wscat send no Origin header at all
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler serves the /ws endpoint.
type Handler struct {
	processor      *chat.Processor
	store          ledger.Store
	jwtSecret      string
	maxMessageSize int64
}

func NewHandler(processor *chat.Processor, store ledger.Store, jwtSecret string, maxMessageSize int) *Handler {
	if maxMessageSize <= 0 {
		maxMessageSize = 1024
	}
	return &Handler{
		processor:      processor,
		store:          store,
		jwtSecret:      jwtSecret,
		maxMessageSize: int64(maxMessageSize),
	}
}

// token extracts the auth token from ?token= or the Authorization header.
func token(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// Serve authenticates the handshake and runs the chat session. Auth
// failures are rejected before the connection is upgraded.
func (h *Handler) Serve(c *gin.Context) {
	tokenStr := token(c)
	if tokenStr == "" {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Authentication token required")
		return
	}

	claims, err := util.ParseToken(h.jwtSecret, tokenStr)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid token")
		return
	}

	user, err := h.store.FindUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the handshake error
		return
	}
	defer conn.Close()

	metrics.ActiveConnections.Inc()
	defer metrics.ActiveConnections.Dec()

	conn.SetReadLimit(h.maxMessageSize)

	welcome := chat.Response{Type: chat.TypeInfo, Message: welcomeMessage}
	if err := conn.WriteJSON(welcome); err != nil {
		return
	}

	// one command per frame; responses go back on the same connection,
	// so a single session processes its commands in order
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		resp := h.processor.Process(c.Request.Context(), user.ID, string(data))
		metrics.CommandsProcessed.WithLabelValues(chat.Keyword(string(data)), resp.Type).Inc()

		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
