package list_event_types

import "github.com/m04kA/SMC-VoiceScheduler/internal/domain"

// EventTypesResponse HTTP response model
type EventTypesResponse struct {
	EventTypes []EventType `json:"eventTypes"`
}

// EventType модель типа события
type EventType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// FromDomain конвертирует доменные типы событий в HTTP модель
func FromDomain(items []domain.EventType) []EventType {
	result := make([]EventType, len(items))
	for i, item := range items {
		result[i] = EventType{
			ID:          item.ID,
			Name:        item.Name,
			Duration:    item.DurationMinutes,
			Description: item.Description,
			URL:         item.SchedulingURL,
		}
	}
	return result
}
