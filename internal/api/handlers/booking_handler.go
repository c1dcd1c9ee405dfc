package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/infrastructure/observability"
	apperrors "github.com/zinyando/salon-booking-api/pkg/errors"
)

// BookingHandler finalizes confirmed bookings
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking handles POST /book. Upstream rejections are passed through
// with the upstream's own status code and body.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.bookingService.Confirm(r.Context(), &req)
	if err != nil {
		var upstreamErr *apperrors.UpstreamHTTPError
		if errors.As(err, &upstreamErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(upstreamErr.StatusCode)
			w.Write(upstreamErr.Body)
			return
		}

		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("Booking error")
		respondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if len(result.Raw) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(result.Raw)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
