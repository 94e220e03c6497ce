package calendly

import "time"

// AvailableTimesResponse ответ /event_type_available_times
type AvailableTimesResponse struct {
	Collection []AvailableTime `json:"collection"`
}

// AvailableTime слот доступности из Calendly
type AvailableTime struct {
	Status            string     `json:"status"`
	InviteesRemaining int        `json:"invitees_remaining"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"` // Calendly обычно не присылает
	SchedulingURL     string     `json:"scheduling_url"`
}

// EventTypesResponse ответ /event_types
type EventTypesResponse struct {
	Collection []EventType `json:"collection"`
}

// EventType тип события в Calendly
type EventType struct {
	URI              string  `json:"uri"`
	Name             string  `json:"name"`
	Active           bool    `json:"active"`
	Slug             string  `json:"slug"`
	Duration         int     `json:"duration"`
	Kind             string  `json:"kind"`
	DescriptionPlain *string `json:"description_plain"`
	SchedulingURL    string  `json:"scheduling_url"`
}

// ErrorResponse модель ошибки от Calendly
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
