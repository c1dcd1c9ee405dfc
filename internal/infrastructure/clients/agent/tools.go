package agent

import "encoding/json"

// toolSpec describes a function-calling tool in the chat completions format.
type toolSpec struct {
	Type     string       `json:"type"`
	Function functionSpec `json:"function"`
}

type functionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

func toolDefinitions() []toolSpec {
	return []toolSpec{
		{
			Type: "function",
			Function: functionSpec{
				Name:        "getServicesCatalogue",
				Description: "Returns the salon services catalogue with prices and durations, grouped by category.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {},
					"required": []
				}`),
			},
		},
		{
			Type: "function",
			Function: functionSpec{
				Name:        "getCalComAvailability",
				Description: "Fetches available booking slots for a specific event type within a given time range.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"start": {
							"type": "string",
							"description": "The start date and time for the availability search range (ISO 8601 format)."
						},
						"end": {
							"type": "string",
							"description": "The end date and time for the availability search range (ISO 8601 format)."
						},
						"username": {
							"type": "string",
							"description": "The username of the scheduling account to check availability for."
						},
						"eventTypeSlug": {
							"type": "string",
							"description": "The slug of the event type to check availability for."
						}
					},
					"required": ["start", "end"]
				}`),
			},
		},
		{
			Type: "function",
			Function: functionSpec{
				Name:        "bookCalComAppointment",
				Description: "Book a salon appointment. Only call this after the client has explicitly confirmed the service, time, name, and email.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"start": {
							"type": "string",
							"description": "Start time of the booking in ISO 8601 format"
						},
						"name": {
							"type": "string",
							"description": "Name of the person making the booking"
						},
						"email": {
							"type": "string",
							"description": "Email of the person making the booking"
						},
						"phoneNumber": {
							"type": "string",
							"description": "Phone number of the person making the booking"
						},
						"metadata": {
							"type": "object",
							"properties": {
								"service": {"type": "string", "description": "The salon service being booked"},
								"price": {"type": "string", "description": "Price of the service"},
								"duration": {"type": "string", "description": "Duration of the service"}
							},
							"required": ["service", "price", "duration"]
						}
					},
					"required": ["start", "name", "email", "metadata"]
				}`),
			},
		},
	}
}
