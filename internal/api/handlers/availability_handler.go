package handlers

import (
	"net/http"

	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
)

// AvailabilityHandler serves slot-listing queries
type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// GetAvailability handles GET /availability?start=<iso8601>&end=<iso8601>
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")

	if start == "" || end == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required parameters: start and end")
		return
	}

	result := h.availabilityService.GetAvailability(
		r.Context(),
		start,
		end,
		query.Get("username"),
		query.Get("eventTypeSlug"),
	)

	statusCode := http.StatusOK
	if result.Status == entities.AvailabilityError {
		statusCode = http.StatusInternalServerError
	}
	respondWithJSON(w, statusCode, result)
}
