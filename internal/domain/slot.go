package domain

import "time"

// RawSlot слот доступности в том виде, в котором его вернул провайдер расписаний
type RawSlot struct {
	StartTime     time.Time
	EndTime       *time.Time // Провайдер может не вернуть конец слота
	SchedulingURL string
}

// End возвращает конец слота; если провайдер его не прислал - start + длительность события
func (s RawSlot) End(eventDuration time.Duration) time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}
	return s.StartTime.Add(eventDuration)
}

// BookableSlot конкретное время, которое можно предложить собеседнику
type BookableSlot struct {
	Time          string // Время для озвучивания, например "9:15 AM"
	Timestamp     time.Time
	SchedulingURL string
}

// DaySummary сводка доступности по дню: есть ли окна утром и после обеда
type DaySummary struct {
	Date      string // YYYY-MM-DD
	Morning   bool
	Afternoon bool
}
