package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zinyando/salon-booking-api/internal/api/handlers"
	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

type MockAgentProvider struct {
	mock.Mock
}

func (m *MockAgentProvider) Complete(ctx context.Context, messages []entities.ChatMessage) (*entities.AgentReply, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AgentReply), args.Error(1)
}

func TestChatHandler_Chat(t *testing.T) {
	newHandler := func(agent *MockAgentProvider) *handlers.ChatHandler {
		scheduling := new(MockSchedulingProvider)
		chatService := services.NewChatService(
			agent,
			services.NewCatalogueService(),
			services.NewAvailabilityService(scheduling, nil),
		)
		return handlers.NewChatHandler(chatService)
	}

	t.Run("streams the assistant answer as SSE", func(t *testing.T) {
		agent := new(MockAgentProvider)
		handler := newHandler(agent)

		agent.On("Complete", mock.Anything, mock.Anything).
			Return(&entities.AgentReply{Content: "We open at 9 AM."}, nil)

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[{"role":"user","content":"When do you open?"}]}`))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

		body := w.Body.String()
		assert.Contains(t, body, "event: message\n")
		assert.Contains(t, body, `"content":"We open at 9 AM."`)
		assert.Contains(t, body, "event: done\n")
	})

	t.Run("streams an error event when the agent fails", func(t *testing.T) {
		agent := new(MockAgentProvider)
		handler := newHandler(agent)

		agent.On("Complete", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Contains(t, w.Body.String(), "event: error\n")
	})

	t.Run("rejects an empty message list", func(t *testing.T) {
		handler := newHandler(new(MockAgentProvider))

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[]}`))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required field: messages"}`, w.Body.String())
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		handler := newHandler(new(MockAgentProvider))

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports unavailable without an agent", func(t *testing.T) {
		handler := handlers.NewChatHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Chat is not configured"}`, w.Body.String())
	})
}
