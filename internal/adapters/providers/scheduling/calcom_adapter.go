package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/zinyando/salon-booking-api/internal/domain/entities"
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/pkg/config"
	apperrors "github.com/zinyando/salon-booking-api/pkg/errors"
)

// Cal.com versions its v2 endpoints per resource via this header.
const (
	slotsAPIVersion    = "2024-09-04"
	bookingsAPIVersion = "2024-08-13"
)

// Fixed booking attributes: every appointment is at the salon, in English,
// with attendee times expressed in UTC.
const (
	attendeeLanguage = "en"
	attendeeTimeZone = "UTC"
	salonAddress     = "Salon Location"
)

// CalComAdapter implements SchedulingProvider against the Cal.com v2 API
type CalComAdapter struct {
	apiKey        string
	baseURL       string
	username      string
	eventTypeSlug string
	client        *http.Client
}

// NewCalComAdapter creates a new Cal.com adapter
func NewCalComAdapter(cfg *config.CalComConfig) providers.SchedulingProvider {
	return &CalComAdapter{
		apiKey:        cfg.APIKey,
		baseURL:       cfg.BaseURL,
		username:      cfg.Username,
		eventTypeSlug: cfg.EventTypeSlug,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type calSlot struct {
	Time  string `json:"time"`
	Start string `json:"start"`
}

// timestamp resolves the upstream's time-or-start field ambiguity. The two
// are synonyms across Cal.com API versions: prefer time, fall back to start,
// else empty string. Tolerated, not rejected.
func (s calSlot) timestamp() string {
	if s.Time != "" {
		return s.Time
	}
	return s.Start
}

type slotsEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// GetAvailableSlots lists open slots for the resolved username/event type
func (a *CalComAdapter) GetAvailableSlots(ctx context.Context, query providers.AvailabilityQuery) ([]entities.Slot, error) {
	params := url.Values{}
	params.Set("start", query.Start)
	params.Set("end", query.End)
	params.Set("username", query.Username)
	params.Set("eventTypeSlug", query.EventTypeSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v2/slots?%s", a.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build slots request", err)
	}
	req.Header.Set("cal-api-version", slotsAPIVersion)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		recordCalMetric(ctx, "slots", 0, time.Since(start), err)
		return nil, apperrors.NewExternalError("cal.com slots request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, apperrors.NewExternalError(fmt.Sprintf("cal.com slots request failed with status %d", resp.StatusCode), nil)
	}

	var envelope slotsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), err)
		return nil, apperrors.NewExternalError("cal.com slots response is not valid JSON", err)
	}

	if envelope.Status != "success" {
		recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), fmt.Errorf("status %q", envelope.Status))
		return nil, apperrors.NewExternalError("cal.com slots response missing success status", nil)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), fmt.Errorf("missing data"))
		return nil, apperrors.NewExternalError("cal.com slots response missing data", nil)
	}

	slots, err := flattenSlotDays(envelope.Data)
	if err != nil {
		recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), err)
		return nil, apperrors.NewExternalError("cal.com slots response has unexpected shape", err)
	}

	recordCalMetric(ctx, "slots", resp.StatusCode, time.Since(start), nil)
	return slots, nil
}

// flattenSlotDays concatenates each date's slots into one list, keeping the
// upstream per-date ordering and the order in which dates appear in the
// document. A plain map decode would lose the date order, so the object is
// walked token by token.
func flattenSlotDays(data []byte) ([]entities.Slot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object of dates, got %v", tok)
	}

	slots := make([]entities.Slot, 0)
	for dec.More() {
		// Date key; only its position matters
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		var day []calSlot
		if err := dec.Decode(&day); err != nil {
			return nil, err
		}
		for _, s := range day {
			// The listing endpoint never returns booking identifiers
			slots = append(slots, entities.Slot{Time: s.timestamp(), BookingUID: nil})
		}
	}

	return slots, nil
}

type bookingAttendee struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Language    string `json:"language"`
	TimeZone    string `json:"timeZone"`
}

type bookingLocation struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

type bookingPayload struct {
	Attendee      bookingAttendee          `json:"attendee"`
	Start         string                   `json:"start"`
	EventTypeSlug string                   `json:"eventTypeSlug"`
	Username      string                   `json:"username"`
	Metadata      entities.BookingMetadata `json:"metadata"`
	Location      bookingLocation          `json:"location"`
}

// CreateBooking books a slot. The response body is preserved verbatim so the
// HTTP boundary can pass it through, success or failure.
func (a *CalComAdapter) CreateBooking(ctx context.Context, bookingReq *entities.BookingRequest) (*entities.Booking, error) {
	payload := bookingPayload{
		Attendee: bookingAttendee{
			Name:        bookingReq.Name,
			Email:       bookingReq.Email,
			PhoneNumber: bookingReq.PhoneNumber,
			Language:    attendeeLanguage,
			TimeZone:    attendeeTimeZone,
		},
		Start:         bookingReq.Start,
		EventTypeSlug: a.eventTypeSlug,
		Username:      a.username,
		Metadata:      bookingReq.Metadata,
		Location: bookingLocation{
			Type:    "attendeeAddress",
			Address: salonAddress,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode booking payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build booking request", err)
	}
	req.Header.Set("cal-api-version", bookingsAPIVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		recordCalMetric(ctx, "bookings", 0, time.Since(start), err)
		return nil, apperrors.NewExternalError("cal.com booking request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		recordCalMetric(ctx, "bookings", resp.StatusCode, time.Since(start), err)
		return nil, apperrors.NewExternalError("failed to read cal.com booking response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		recordCalMetric(ctx, "bookings", resp.StatusCode, time.Since(start), fmt.Errorf("status %d", resp.StatusCode))
		return nil, &apperrors.UpstreamHTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	booking, err := decodeBooking(respBody)
	if err != nil {
		recordCalMetric(ctx, "bookings", resp.StatusCode, time.Since(start), err)
		return nil, apperrors.NewExternalError("cal.com booking response has unexpected shape", err)
	}

	recordCalMetric(ctx, "bookings", resp.StatusCode, time.Since(start), nil)
	return booking, nil
}

// decodeBooking reads the booking fields from the top level, falling back to
// the {status, data} envelope some Cal.com versions wrap bookings in.
func decodeBooking(body []byte) (*entities.Booking, error) {
	var booking entities.Booking
	if err := json.Unmarshal(body, &booking); err != nil {
		return nil, err
	}

	if booking.UID == "" {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, &booking); err != nil {
				return nil, err
			}
		}
	}

	if booking.UID == "" {
		return nil, fmt.Errorf("booking response missing uid")
	}

	if booking.Responses == nil {
		booking.Responses = map[string]entities.BookingField{}
	}
	booking.Raw = body
	return &booking, nil
}

type calMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
}

var calMetricsInit = false
var calMetricsInst calMetrics

func ensureCalMetrics() {
	if calMetricsInit {
		return
	}
	meter := otel.Meter("github.com/zinyando/salon-booking-api/calcom")

	requestCount, err := meter.Int64Counter(
		"scheduling.calcom.request.count",
		metric.WithDescription("Number of Cal.com requests"),
	)
	if err != nil {
		return
	}
	requestDuration, err := meter.Float64Histogram(
		"scheduling.calcom.request.duration",
		metric.WithDescription("Cal.com request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return
	}
	requestErrors, err := meter.Int64Counter(
		"scheduling.calcom.request.errors",
		metric.WithDescription("Number of Cal.com request errors"),
	)
	if err != nil {
		return
	}

	calMetricsInst = calMetrics{
		requestCount:    requestCount,
		requestDuration: requestDuration,
		requestErrors:   requestErrors,
	}
	calMetricsInit = true
}

func recordCalMetric(ctx context.Context, endpoint string, statusCode int, duration time.Duration, err error) {
	ensureCalMetrics()
	if !calMetricsInit {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("scheduling.provider", "calcom"),
		attribute.String("scheduling.endpoint", endpoint),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	calMetricsInst.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	calMetricsInst.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		calMetricsInst.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
