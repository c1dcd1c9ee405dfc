package entities

import "encoding/json"

// BookingMetadata is the free-form service context attached to a booking
type BookingMetadata struct {
	Service  string `json:"service"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

// BookingRequest carries the attendee details for a booking attempt.
// PhoneNumber is the canonical optional top-level field; when present it is
// forwarded inside the attendee block of the upstream payload.
type BookingRequest struct {
	Start       string          `json:"start"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	Metadata    BookingMetadata `json:"metadata"`
}

// BookingField is one collected response on a confirmed booking
type BookingField struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// BookingStatus is the outcome of a booking attempt
type BookingStatus string

const (
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
)

// Booking is the upstream booking object as returned by the scheduling API.
// Raw holds the response body verbatim for boundary pass-through.
type Booking struct {
	UID               string                  `json:"uid"`
	Responses         map[string]BookingField `json:"responses"`
	SMSReminderNumber *string                 `json:"smsReminderNumber"`
	Raw               json.RawMessage         `json:"-"`
}

// BookingResult is the normalized outcome of a booking attempt. A completed
// result always carries a non-empty UID from upstream; a rejected result is
// synthesized locally and never touched the network.
type BookingResult struct {
	UID               string                  `json:"uid"`
	Responses         map[string]BookingField `json:"responses"`
	SMSReminderNumber *string                 `json:"smsReminderNumber"`
	Status            BookingStatus           `json:"status"`
	Message           string                  `json:"message,omitempty"`

	// Raw is the upstream body for completed bookings, nil otherwise
	Raw json.RawMessage `json:"-"`
}

// AttemptState tracks one booking attempt as held by the caller:
// Presented -> {Confirming -> Completed | Failed} or Presented -> Rejected.
type AttemptState string

const (
	AttemptPresented  AttemptState = "presented"
	AttemptConfirming AttemptState = "confirming"
	AttemptCompleted  AttemptState = "completed"
	AttemptFailed     AttemptState = "failed"
	AttemptRejected   AttemptState = "rejected"
)

// Terminal reports whether no further transition is allowed. A failed
// attempt is terminal; retrying means starting a new attempt.
func (s AttemptState) Terminal() bool {
	switch s {
	case AttemptCompleted, AttemptFailed, AttemptRejected:
		return true
	}
	return false
}

// CanTransition reports whether moving to next is a legal step
func (s AttemptState) CanTransition(next AttemptState) bool {
	switch s {
	case AttemptPresented:
		return next == AttemptConfirming || next == AttemptRejected
	case AttemptConfirming:
		return next == AttemptCompleted || next == AttemptFailed
	}
	return false
}
