package check_times

import "github.com/m04kA/SMC-VoiceScheduler/internal/domain"

// Request модель запроса конкретных времен на выбранный день
type Request struct {
	Date            string // YYYY-MM-DD
	EventTypeID     string // URI типа события
	Period          string // morning | afternoon; пусто - оба периода
	DurationMinutes *int   // Если не задано - берется из каталога типов событий
}

// Response модель ответа со списком времен
type Response struct {
	Date            string
	Periods         []domain.Period
	DurationMinutes int
	Readable        domain.ReadableRange
	Slots           []domain.BookableSlot // Отсортированы по времени
}
