package providers

import (
	"context"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

// AgentProvider is the interface to the hosted language-model agent that
// drives the conversation. The agent is given the booking tools as callable
// functions; executing them is the caller's job.
type AgentProvider interface {
	Complete(ctx context.Context, messages []entities.ChatMessage) (*entities.AgentReply, error)
}
