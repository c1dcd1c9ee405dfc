package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zinyando/salon-booking-api/internal/api/handlers"
	"github.com/zinyando/salon-booking-api/internal/application/services"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
)

// Mocks

type MockSchedulingProvider struct {
	mock.Mock
}

func (m *MockSchedulingProvider) GetAvailableSlots(ctx context.Context, query providers.AvailabilityQuery) ([]entities.Slot, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Slot), args.Error(1)
}

func (m *MockSchedulingProvider) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

// Tests

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	newHandler := func(provider *MockSchedulingProvider) *handlers.AvailabilityHandler {
		return handlers.NewAvailabilityHandler(services.NewAvailabilityService(provider, nil))
	}

	t.Run("returns slots for a valid window", func(t *testing.T) {
		provider := new(MockSchedulingProvider)
		handler := newHandler(provider)

		provider.On("GetAvailableSlots", mock.Anything, mock.Anything).
			Return([]entities.Slot{{Time: "2026-09-01T10:00:00Z"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/availability?start=2026-09-01T09:00:00Z&end=2026-09-01T17:00:00Z", nil)
		w := httptest.NewRecorder()

		handler.GetAvailability(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var result entities.AvailabilityResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, entities.AvailabilityCompleted, result.Status)
		assert.Equal(t, "UTC", result.TimeZone)
		require.Len(t, result.AvailableSlots, 1)
		assert.Equal(t, "2026-09-01T10:00:00Z", result.AvailableSlots[0].Time)
	})

	t.Run("rejects a missing start or end", func(t *testing.T) {
		handler := newHandler(new(MockSchedulingProvider))

		for _, url := range []string{
			"/availability",
			"/availability?start=2026-09-01T09:00:00Z",
			"/availability?end=2026-09-01T17:00:00Z",
		} {
			req := httptest.NewRequest(http.MethodGet, url, nil)
			w := httptest.NewRecorder()

			handler.GetAvailability(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing required parameters: start and end"}`, w.Body.String())
		}
	})

	t.Run("returns 500 with a structured result on upstream failure", func(t *testing.T) {
		provider := new(MockSchedulingProvider)
		handler := newHandler(provider)

		provider.On("GetAvailableSlots", mock.Anything, mock.Anything).
			Return(nil, errors.New("upstream down"))

		req := httptest.NewRequest(http.MethodGet, "/availability?start=2026-09-01T09:00:00Z&end=2026-09-01T17:00:00Z", nil)
		w := httptest.NewRecorder()

		handler.GetAvailability(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var result entities.AvailabilityResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, entities.AvailabilityError, result.Status)
		assert.NotNil(t, result.AvailableSlots)
		assert.Empty(t, result.AvailableSlots)
		assert.Equal(t, "Failed to fetch availability from Cal.com", result.Message)
	})
}
