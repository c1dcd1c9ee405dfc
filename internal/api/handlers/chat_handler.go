package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
)

// ChatHandler streams agent conversations over Server-Sent Events
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler. A nil chat service means no
// agent credentials were configured; the endpoint then reports unavailable.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type chatRequest struct {
	Messages []entities.ChatMessage `json:"messages"`
}

// Chat handles POST /chat with {messages}
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.chatService == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Chat is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		respondWithError(w, http.StatusBadRequest, "Missing required field: messages")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	answer, err := h.chatService.Respond(r.Context(), req.Messages)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("Chat error")
		sendEvent(w, "error", map[string]string{"message": "Failed to generate a response"})
		flusher.Flush()
		return
	}

	sendEvent(w, "message", map[string]string{
		"role":    "assistant",
		"content": answer,
	})
	sendEvent(w, "done", map[string]string{})
	flusher.Flush()
}

// sendEvent sends an SSE event to the client
func sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
