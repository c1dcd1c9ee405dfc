package entities

// Slot is a single bookable start time returned by the scheduling API.
// Time stays a string: it is the upstream ISO 8601 value passed through
// untouched, and the tolerant time/start decode can produce an empty string
// for malformed upstream entries.
type Slot struct {
	Time       string  `json:"time"`
	BookingUID *string `json:"bookingUid"`
}

// AvailabilityStatus reports the outcome of an availability query
type AvailabilityStatus string

const (
	AvailabilityCompleted AvailabilityStatus = "completed"
	AvailabilityError     AvailabilityStatus = "error"
)

// AvailabilityResult is the normalized outcome of one availability query.
// AvailableSlots is never nil, including on error.
type AvailabilityResult struct {
	AvailableSlots []Slot             `json:"availableSlots"`
	TimeZone       string             `json:"timeZone"`
	Status         AvailabilityStatus `json:"status"`
	Message        string             `json:"message,omitempty"`
}

// NewAvailabilityError builds an error result with an empty slot list
func NewAvailabilityError(message string) AvailabilityResult {
	return AvailabilityResult{
		AvailableSlots: []Slot{},
		TimeZone:       "UTC",
		Status:         AvailabilityError,
		Message:        message,
	}
}
