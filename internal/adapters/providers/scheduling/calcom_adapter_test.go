package scheduling_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zinyando/salon-booking-api/internal/adapters/providers/scheduling"
	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/pkg/config"
	apperrors "github.com/zinyando/salon-booking-api/pkg/errors"
)

func newAdapter(t *testing.T, upstream http.HandlerFunc) providers.SchedulingProvider {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)
	return scheduling.NewCalComAdapter(&config.CalComConfig{
		BaseURL:       server.URL,
		APIKey:        "cal_test_key",
		Username:      "zinyando",
		EventTypeSlug: "salon-appointment",
	})
}

func TestCalComAdapter_GetAvailableSlots(t *testing.T) {
	t.Run("flattens dated slots preserving order", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/slots", r.URL.Path)
			assert.Equal(t, "2024-09-04", r.Header.Get("cal-api-version"))
			assert.Equal(t, "2025-05-01T09:00:00Z", r.URL.Query().Get("start"))
			assert.Equal(t, "zinyando", r.URL.Query().Get("username"))
			assert.Equal(t, "salon-appointment", r.URL.Query().Get("eventTypeSlug"))

			// Dates deliberately out of lexical order: document order wins
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"success","data":{` +
				`"2025-05-02":[{"time":"2025-05-02T11:00:00Z"}],` +
				`"2025-05-01":[{"time":"2025-05-01T09:00:00Z"},{"time":"2025-05-01T10:00:00Z"}]}}`))
		})

		slots, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{
			Start:         "2025-05-01T09:00:00Z",
			End:           "2025-05-03T19:00:00Z",
			Username:      "zinyando",
			EventTypeSlug: "salon-appointment",
		})

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "2025-05-02T11:00:00Z", slots[0].Time)
		assert.Equal(t, "2025-05-01T09:00:00Z", slots[1].Time)
		assert.Equal(t, "2025-05-01T10:00:00Z", slots[2].Time)
		for _, slot := range slots {
			assert.Nil(t, slot.BookingUID)
		}
	})

	t.Run("decodes a single-day window", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":{"2025-05-01":[{"time":"2025-05-01T09:00:00Z"},{"time":"2025-05-01T10:00:00Z"}]}}`))
		})

		slots, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{
			Start: "2025-05-01T09:00:00Z", End: "2025-05-01T19:00:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, []entities.Slot{
			{Time: "2025-05-01T09:00:00Z", BookingUID: nil},
			{Time: "2025-05-01T10:00:00Z", BookingUID: nil},
		}, slots)
	})

	t.Run("falls back from time to start field", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":{"2025-05-01":[` +
				`{"start":"2025-05-01T09:00:00Z"},` +
				`{"time":"2025-05-01T10:00:00Z","start":"ignored"},` +
				`{}]}}`))
		})

		slots, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{
			Start: "2025-05-01T09:00:00Z", End: "2025-05-01T19:00:00Z",
		})

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "2025-05-01T09:00:00Z", slots[0].Time)
		assert.Equal(t, "2025-05-01T10:00:00Z", slots[1].Time)
		assert.Equal(t, "", slots[2].Time)
	})

	t.Run("errors when status is not success", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"failure","data":{}}`))
		})

		_, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{})
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	})

	t.Run("errors when data is missing", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success"}`))
		})

		_, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{})
		require.Error(t, err)
	})

	t.Run("errors on non-success http status", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := adapter.GetAvailableSlots(context.Background(), providers.AvailabilityQuery{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func newBookingRequest() *entities.BookingRequest {
	return &entities.BookingRequest{
		Start:       "2025-05-01T10:00:00Z",
		Name:        "Amara",
		Email:       "amara@example.com",
		PhoneNumber: "+15550001111",
		Metadata: entities.BookingMetadata{
			Service:  "Women's Haircut",
			Price:    "$50-$70",
			Duration: "60 min",
		},
	}
}

func TestCalComAdapter_CreateBooking(t *testing.T) {
	t.Run("sends fixed attendee and location attributes", func(t *testing.T) {
		var captured map[string]interface{}
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/bookings", r.URL.Path)
			assert.Equal(t, "2024-08-13", r.Header.Get("cal-api-version"))
			assert.Equal(t, "Bearer cal_test_key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"uid":"bk_123","responses":{"name":{"label":"Name","value":"Amara"}},"smsReminderNumber":"+15550001111"}`))
		})

		booking, err := adapter.CreateBooking(context.Background(), newBookingRequest())
		require.NoError(t, err)

		attendee := captured["attendee"].(map[string]interface{})
		assert.Equal(t, "Amara", attendee["name"])
		assert.Equal(t, "en", attendee["language"])
		assert.Equal(t, "UTC", attendee["timeZone"])
		assert.Equal(t, "+15550001111", attendee["phoneNumber"])

		location := captured["location"].(map[string]interface{})
		assert.Equal(t, "attendeeAddress", location["type"])
		assert.Equal(t, "Salon Location", location["address"])

		assert.Equal(t, "salon-appointment", captured["eventTypeSlug"])
		assert.Equal(t, "zinyando", captured["username"])

		assert.Equal(t, "bk_123", booking.UID)
		assert.Equal(t, "Amara", booking.Responses["name"].Value)
		require.NotNil(t, booking.SMSReminderNumber)
		assert.Equal(t, "+15550001111", *booking.SMSReminderNumber)
		assert.NotEmpty(t, booking.Raw)
	})

	t.Run("unwraps enveloped booking data", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":{"uid":"bk_456","responses":{}}}`))
		})

		booking, err := adapter.CreateBooking(context.Background(), newBookingRequest())
		require.NoError(t, err)
		assert.Equal(t, "bk_456", booking.UID)
	})

	t.Run("passes upstream errors through verbatim", func(t *testing.T) {
		upstreamBody := `{"status":"error","error":{"code":"no_available_users_found_error"}}`
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(upstreamBody))
		})

		_, err := adapter.CreateBooking(context.Background(), newBookingRequest())
		require.Error(t, err)

		var upErr *apperrors.UpstreamHTTPError
		require.True(t, errors.As(err, &upErr))
		assert.Equal(t, http.StatusUnprocessableEntity, upErr.StatusCode)
		assert.Equal(t, upstreamBody, string(upErr.Body))
	})

	t.Run("errors when the booking has no uid", func(t *testing.T) {
		adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"responses":{}}`))
		})

		_, err := adapter.CreateBooking(context.Background(), newBookingRequest())
		require.Error(t, err)
	})
}
