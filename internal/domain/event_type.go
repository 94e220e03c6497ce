package domain

// EventType шаблон встречи, который можно забронировать
type EventType struct {
	ID              string // URI события у провайдера
	Name            string
	DurationMinutes int
	Description     string
	SchedulingURL   string
}
