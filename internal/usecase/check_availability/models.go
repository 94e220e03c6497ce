package check_availability

import "github.com/m04kA/SMC-VoiceScheduler/internal/domain"

// Request модель запроса обзора доступности на неделю
type Request struct {
	WeekOffset  *int   // Смещение в неделях (nil = текущая неделя)
	EventTypeID string // URI типа события
}

// Response модель ответа с обзором доступности
type Response struct {
	Summary  map[string]domain.DaySummary // Ключ - день недели (Monday, Tuesday, ...)
	Readable domain.ReadableRange         // Границы недели для озвучивания
	Range    domain.DateRange             // Фактический интервал запроса к провайдеру
}
