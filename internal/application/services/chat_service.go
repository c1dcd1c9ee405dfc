package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
)

// maxToolRounds bounds the agent tool loop so a misbehaving model cannot
// spin forever.
const maxToolRounds = 5

// ChatService drives a conversation with the hosted agent, executing
// catalogue and availability tool calls locally. Booking tool calls are never
// executed here: finalizing a booking requires an explicit user confirmation
// through the booking endpoint, so the tool reports the attempt as pending.
type ChatService struct {
	agent        providers.AgentProvider
	catalogue    *CatalogueService
	availability *AvailabilityService
}

// NewChatService creates a new chat service
func NewChatService(agent providers.AgentProvider, catalogue *CatalogueService, availability *AvailabilityService) *ChatService {
	return &ChatService{
		agent:        agent,
		catalogue:    catalogue,
		availability: availability,
	}
}

// Respond runs the agent tool loop over the conversation and returns the
// final assistant message.
func (s *ChatService) Respond(ctx context.Context, messages []entities.ChatMessage) (string, error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.Respond")
	defer span.End()

	if len(messages) == 0 {
		return "", errors.New("messages are required")
	}

	conversation := make([]entities.ChatMessage, len(messages))
	copy(conversation, messages)
	state := entities.NewConversationState()

	for round := 0; round <= maxToolRounds; round++ {
		reply, err := s.agent.Complete(ctx, conversation)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		conversation = append(conversation, entities.ChatMessage{
			Role:      "assistant",
			Content:   reply.Content,
			ToolCalls: reply.ToolCalls,
		})

		for _, call := range reply.ToolCalls {
			result := s.executeTool(ctx, call, &state)
			conversation = append(conversation, entities.ChatMessage{
				Role:       "tool",
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("agent did not produce a final answer within %d tool rounds", maxToolRounds)
}

type availabilityToolArgs struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	Username      string `json:"username"`
	EventTypeSlug string `json:"eventTypeSlug"`
}

type bookingToolArgs struct {
	Start    string                   `json:"start"`
	Metadata entities.BookingMetadata `json:"metadata"`
}

func (s *ChatService) executeTool(ctx context.Context, call entities.ToolCall, state *entities.ConversationState) string {
	logger := observability.LoggerFromContext(ctx)
	logger.Debug().Str("tool", call.Name).Msg("Executing agent tool call")

	switch call.Name {
	case "getServicesCatalogue":
		payload, err := json.Marshal(map[string]interface{}{
			"catalogue": s.catalogue.GetCatalogue(),
		})
		if err != nil {
			return toolError("failed to encode catalogue")
		}
		return string(payload)

	case "getCalComAvailability":
		var args availabilityToolArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return toolError("invalid availability arguments")
		}
		if args.Start == "" || args.End == "" {
			return toolError("start and end are required")
		}
		result := s.availability.GetAvailability(ctx, args.Start, args.End, args.Username, args.EventTypeSlug)
		payload, err := json.Marshal(result)
		if err != nil {
			return toolError("failed to encode availability")
		}
		return string(payload)

	case "bookCalComAppointment":
		var args bookingToolArgs
		if err := json.Unmarshal(call.Arguments, &args); err != nil {
			return toolError("invalid booking arguments")
		}
		// Track the presented selection; the attempt stays in its initial
		// presented state until the booking endpoint resolves it.
		*state = state.
			WithService(entities.Service{Service: args.Metadata.Service, Price: args.Metadata.Price, Duration: args.Metadata.Duration}).
			WithSlot(entities.Slot{Time: args.Start})
		logger.Info().
			Str("service", args.Metadata.Service).
			Str("start", args.Start).
			Str("attempt", string(state.Attempt())).
			Msg("Booking presented for confirmation")
		return `{"status":"pending","message":"The booking details have been presented to the client. The booking will only be finalized once the client explicitly confirms it."}`

	default:
		return toolError(fmt.Sprintf("unknown tool: %s", call.Name))
	}
}

func toolError(message string) string {
	payload, err := json.Marshal(map[string]string{
		"status":  "error",
		"message": message,
	})
	if err != nil {
		return `{"status":"error"}`
	}
	return string(payload)
}
