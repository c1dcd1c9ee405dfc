package services

import (
	"context"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
	"github.com/zinyando/salon-booking-api/pkg/config"
)

// AvailabilityService answers slot-listing queries against the scheduling
// provider. It always returns a structured result; provider failures become
// an error-status result instead of propagating.
type AvailabilityService struct {
	provider      providers.SchedulingProvider
	username      string
	eventTypeSlug string
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(provider providers.SchedulingProvider, cfg *config.CalComConfig) *AvailabilityService {
	username := config.DefaultCalUsername
	eventTypeSlug := config.DefaultCalEventTypeSlug
	if cfg != nil {
		if cfg.Username != "" {
			username = cfg.Username
		}
		if cfg.EventTypeSlug != "" {
			eventTypeSlug = cfg.EventTypeSlug
		}
	}

	return &AvailabilityService{
		provider:      provider,
		username:      username,
		eventTypeSlug: eventTypeSlug,
	}
}

// GetAvailability lists open slots in [start, end). An empty username or
// eventTypeSlug falls back to the configured account.
func (s *AvailabilityService) GetAvailability(ctx context.Context, start, end, username, eventTypeSlug string) entities.AvailabilityResult {
	ctx, span := observability.StartSpan(ctx, "AvailabilityService.GetAvailability")
	defer span.End()

	if username == "" {
		username = s.username
	}
	if eventTypeSlug == "" {
		eventTypeSlug = s.eventTypeSlug
	}

	slots, err := s.provider.GetAvailableSlots(ctx, providers.AvailabilityQuery{
		Start:         start,
		End:           end,
		Username:      username,
		EventTypeSlug: eventTypeSlug,
	})
	if err != nil {
		logger := observability.LoggerFromContext(ctx)
		logger.Error().Err(err).
			Str("start", start).
			Str("end", end).
			Msg("Failed to fetch availability")
		return entities.NewAvailabilityError("Failed to fetch availability from Cal.com")
	}

	if slots == nil {
		slots = []entities.Slot{}
	}

	return entities.AvailabilityResult{
		AvailableSlots: slots,
		TimeZone:       "UTC",
		Status:         entities.AvailabilityCompleted,
	}
}
