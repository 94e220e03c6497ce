package domain

import "time"

// Буферы, защищающие от показа слотов в прошлом
const (
	SafetyBuffer     = 5 * time.Minute // для запроса на сегодняшнюю дату
	SchedulingBuffer = 3 * time.Hour   // для текущей недели
)

// Рабочий день (локальное время)
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 17
)

// Границы периодов дня (часы в UTC, правая граница не включается)
const (
	MorningStartHour   = 5
	MorningEndHour     = 12
	AfternoonStartHour = 12
	AfternoonEndHour   = 17
)

// Default configuration values
const (
	DefaultEventDurationMinutes = 30
	MaxEventDurationMinutes     = 24 * 60 // Событие не длиннее суток
)

// Time format constants
const (
	DateFormat        = "2006-01-02"               // YYYY-MM-DD
	SlotTimeFormat    = "3:04 PM"                  // 9:15 AM
	ReadableDayFormat = "Monday, January 2, 2006"  // Wednesday, May 14, 2025
	ProviderTimestamp = "2006-01-02T15:04:05.000Z" // формат времени в запросах к провайдеру
)
