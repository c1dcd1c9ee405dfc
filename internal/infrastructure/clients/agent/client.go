package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client implements the conversational agent provider over an
// OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *tokenBucket
}

// NewClient creates a new agent client.
func NewClient(cfg *config.AgentConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("agent api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limiter := newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst)

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: limiter,
	}, nil
}

type wireFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type wireToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
}

type completionEnvelope struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the model and returns its reply, which
// may contain tool calls for the caller to execute.
func (c *Client) Complete(ctx context.Context, messages []entities.ChatMessage) (*entities.AgentReply, error) {
	if len(messages) == 0 {
		return nil, errors.New("at least one message is required")
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordAgentMetric(ctx, c.model, 0, 0, err)
			return nil, err
		}
		recordAgentRateLimitWait(ctx, c.model, time.Since(waitStart))
	}

	wireMessages := make([]wireMessage, 0, len(messages)+1)
	wireMessages = append(wireMessages, wireMessage{
		Role:    "system",
		Content: salonAssistantSystemPrompt,
	})
	for _, msg := range messages {
		wireMessages = append(wireMessages, toWireMessage(msg))
	}

	payload := map[string]interface{}{
		"model":       c.model,
		"messages":    wireMessages,
		"tools":       toolDefinitions(),
		"temperature": 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordAgentMetric(ctx, c.model, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordAgentMetric(ctx, c.model, resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, fmt.Errorf("agent request failed with status %d", resp.StatusCode)
	}

	var envelope completionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordAgentMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	if len(envelope.Choices) == 0 {
		recordAgentMetric(ctx, c.model, resp.StatusCode, time.Since(start), errors.New("missing choices"))
		return nil, errors.New("agent response missing choices")
	}

	reply := &entities.AgentReply{
		Content: envelope.Choices[0].Message.Content,
	}
	for _, call := range envelope.Choices[0].Message.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls, entities.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: json.RawMessage(call.Function.Arguments),
		})
	}

	recordAgentMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)
	return reply, nil
}

func toWireMessage(msg entities.ChatMessage) wireMessage {
	wire := wireMessage{
		Role:       msg.Role,
		Content:    msg.Content,
		ToolCallID: msg.ToolCallID,
	}
	for _, call := range msg.ToolCalls {
		wire.ToolCalls = append(wire.ToolCalls, wireToolCall{
			ID:   call.ID,
			Type: "function",
			Function: wireFunction{
				Name:      call.Name,
				Arguments: string(call.Arguments),
			},
		})
	}
	return wire
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm == 0 {
		rpm = 60
	}
	if rpm < 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return newTokenBucketWithRate(rpm, burst)
}

type tokenBucket struct {
	tokens chan struct{}
}

func newTokenBucketWithRate(rpm int, burst int) *tokenBucket {
	bucket := &tokenBucket{
		tokens: make(chan struct{}, burst),
	}

	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			select {
			case bucket.tokens <- struct{}{}:
			default:
			}
		}
	}()

	return bucket
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

type agentClientMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

var agentMetricsInit = false
var agentMetrics agentClientMetrics

func ensureAgentMetrics() {
	if agentMetricsInit {
		return
	}
	meter := otel.Meter("github.com/zinyando/salon-booking-api/agent")

	requestCount, err := meter.Int64Counter(
		"ai.agent.request.count",
		metric.WithDescription("Number of agent requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"ai.agent.request.duration",
		metric.WithDescription("Agent request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"ai.agent.request.errors",
		metric.WithDescription("Number of agent request errors"),
	)
	if err != nil {
		return
	}
	rateLimitWait, err := meter.Float64Histogram(
		"ai.agent.rate_limit.wait",
		metric.WithDescription("Time spent waiting for the agent rate limiter in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}

	agentMetrics = agentClientMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
		rateLimitWait:   rateLimitWait,
	}
	agentMetricsInit = true
}

func recordAgentMetric(ctx context.Context, model string, statusCode int, duration time.Duration, err error) {
	ensureAgentMetrics()
	if !agentMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.model", model),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	agentMetrics.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	agentMetrics.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		agentMetrics.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordAgentRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	ensureAgentMetrics()
	if !agentMetricsInit {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("ai.model", model),
	}
	agentMetrics.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(attrs...))
}
