package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
)

const confirmationTimeLayout = "Monday, January 2, 2006 at 3:04 PM (UTC)"

// BookingService finalizes booking attempts. Confirm is the only operation
// that reaches the network; Reject is a purely local cancel.
type BookingService struct {
	provider providers.SchedulingProvider
}

// NewBookingService creates a new booking service
func NewBookingService(provider providers.SchedulingProvider) *BookingService {
	return &BookingService{
		provider: provider,
	}
}

// Confirm books the slot on the scheduling provider and returns a completed
// result with a confirmation message. Provider errors, including upstream
// pass-through errors, are returned to the caller untouched.
func (s *BookingService) Confirm(ctx context.Context, req *entities.BookingRequest) (*entities.BookingResult, error) {
	ctx, span := observability.StartSpan(ctx, "BookingService.Confirm")
	defer span.End()

	booking, err := s.provider.CreateBooking(ctx, req)
	if err != nil {
		logger := observability.LoggerFromContext(ctx)
		logger.Error().Err(err).
			Str("service", req.Metadata.Service).
			Str("start", req.Start).
			Msg("Booking failed")
		return nil, err
	}

	responses := booking.Responses
	if responses == nil {
		responses = map[string]entities.BookingField{}
	}

	return &entities.BookingResult{
		UID:               booking.UID,
		Responses:         responses,
		SMSReminderNumber: booking.SMSReminderNumber,
		Status:            entities.BookingCompleted,
		Message: fmt.Sprintf("Successfully booked %s for %s. Total: %s",
			req.Metadata.Service, formatStart(req.Start), req.Metadata.Price),
		Raw: booking.Raw,
	}, nil
}

// Reject cancels a presented booking locally. No network call is made; the
// result carries a synthesized id so the caller can still reference the
// attempt.
func (s *BookingService) Reject(req *entities.BookingRequest) *entities.BookingResult {
	return &entities.BookingResult{
		UID:               fmt.Sprintf("rejected-%d", time.Now().UnixMilli()),
		Responses:         map[string]entities.BookingField{},
		SMSReminderNumber: nil,
		Status:            entities.BookingRejected,
		Message: fmt.Sprintf("Booking for %s on %s was cancelled.",
			req.Metadata.Service, formatStart(req.Start)),
	}
}

// formatStart renders an ISO 8601 start time for humans, falling back to the
// raw string when it does not parse.
func formatStart(start string) string {
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return start
	}
	return t.UTC().Format(confirmationTimeLayout)
}
