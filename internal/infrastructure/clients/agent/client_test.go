package agent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/clients/agent"
	"github.com/zinyando/salon-booking-api/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*agent.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := agent.NewClient(&config.AgentConfig{
		APIKey:         "test-key",
		Model:          "gpt-4o",
		BaseURL:        server.URL,
		RateLimitRPM:   -1,
		RateLimitBurst: 0,
	})
	require.NoError(t, err)
	return client, server
}

func TestNewClient(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		_, err := agent.NewClient(&config.AgentConfig{})
		assert.Error(t, err)
	})

	t.Run("requires non-nil config", func(t *testing.T) {
		_, err := agent.NewClient(nil)
		assert.Error(t, err)
	})
}

func TestComplete(t *testing.T) {
	t.Run("returns assistant content", func(t *testing.T) {
		var captured map[string]interface{}
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"choices": [
					{"message": {"role": "assistant", "content": "We offer haircuts from $35."}}
				]
			}`))
		})

		reply, err := client.Complete(context.Background(), []entities.ChatMessage{
			{Role: "user", Content: "What services do you offer?"},
		})

		require.NoError(t, err)
		assert.Equal(t, "We offer haircuts from $35.", reply.Content)
		assert.Empty(t, reply.ToolCalls)

		messages, ok := captured["messages"].([]interface{})
		require.True(t, ok)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]interface{})
		assert.Equal(t, "system", first["role"])

		tools, ok := captured["tools"].([]interface{})
		require.True(t, ok)
		assert.Len(t, tools, 3)
	})

	t.Run("returns tool calls", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"choices": [
					{"message": {
						"role": "assistant",
						"content": "",
						"tool_calls": [
							{"id": "call_1", "type": "function", "function": {"name": "getCalComAvailability", "arguments": "{\"start\":\"2026-09-01T09:00:00Z\",\"end\":\"2026-09-01T17:00:00Z\"}"}}
						]
					}}
				]
			}`))
		})

		reply, err := client.Complete(context.Background(), []entities.ChatMessage{
			{Role: "user", Content: "Any openings tomorrow?"},
		})

		require.NoError(t, err)
		require.Len(t, reply.ToolCalls, 1)
		assert.Equal(t, "call_1", reply.ToolCalls[0].ID)
		assert.Equal(t, "getCalComAvailability", reply.ToolCalls[0].Name)
		assert.JSONEq(t, `{"start":"2026-09-01T09:00:00Z","end":"2026-09-01T17:00:00Z"}`, string(reply.ToolCalls[0].Arguments))
	})

	t.Run("errors on upstream failure", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.Complete(context.Background(), []entities.ChatMessage{
			{Role: "user", Content: "hello"},
		})

		assert.ErrorContains(t, err, "status 429")
	})

	t.Run("errors on empty choices", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices": []}`))
		})

		_, err := client.Complete(context.Background(), []entities.ChatMessage{
			{Role: "user", Content: "hello"},
		})

		assert.ErrorContains(t, err, "missing choices")
	})

	t.Run("requires at least one message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Complete(context.Background(), nil)

		assert.Error(t, err)
	})
}
