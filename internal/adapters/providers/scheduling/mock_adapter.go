package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
)

// MockAdapter provides deterministic slots and bookings for local
// development, used when no Cal.com API key is configured.
type MockAdapter struct {
	slotInterval time.Duration
	maxSlots     int
}

// NewMockAdapter creates a mock scheduling provider.
func NewMockAdapter() providers.SchedulingProvider {
	return &MockAdapter{
		slotInterval: 30 * time.Minute,
		maxSlots:     6,
	}
}

// GetAvailableSlots returns half-hour sample slots within the window.
func (m *MockAdapter) GetAvailableSlots(ctx context.Context, query providers.AvailabilityQuery) ([]entities.Slot, error) {
	from, err := time.Parse(time.RFC3339, query.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	to, err := time.Parse(time.RFC3339, query.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	slots := make([]entities.Slot, 0, m.maxSlots)
	cursor := from.UTC().Truncate(time.Minute).Add(m.slotInterval)
	for cursor.Before(to.UTC()) && len(slots) < m.maxSlots {
		slots = append(slots, entities.Slot{Time: cursor.Format(time.RFC3339), BookingUID: nil})
		cursor = cursor.Add(m.slotInterval)
	}

	return slots, nil
}

// CreateBooking returns a synthetic booking reference.
func (m *MockAdapter) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error) {
	booking := &entities.Booking{
		UID: fmt.Sprintf("mock-%d", time.Now().UnixNano()),
		Responses: map[string]entities.BookingField{
			"name":  {Label: "Name", Value: req.Name},
			"email": {Label: "Email", Value: req.Email},
		},
	}
	raw, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}
	booking.Raw = raw
	return booking, nil
}
