package providers

import (
	"context"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

// AvailabilityQuery is a fully resolved slot-listing request. Start and End
// are ISO 8601 timestamps forwarded to upstream as-is; an inverted range is
// the upstream's problem to answer, not ours to reject.
type AvailabilityQuery struct {
	Start         string
	End           string
	Username      string
	EventTypeSlug string
}

// SchedulingProvider is the interface to the external scheduling service
// that owns calendar truth (Cal.com in production).
type SchedulingProvider interface {
	// GetAvailableSlots lists open slots in the queried window, flattened
	// across dates in upstream order
	GetAvailableSlots(ctx context.Context, query AvailabilityQuery) ([]entities.Slot, error)

	// CreateBooking books a slot on the external provider. A non-2xx
	// upstream answer is returned as *errors.UpstreamHTTPError.
	CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error)
}
