package check_times

import (
	"time"

	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
)

// TimesResponse HTTP response model
type TimesResponse struct {
	Date            string         `json:"date"`
	ReadableDate    string         `json:"readableDate"`
	Periods         []string       `json:"periods"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []BookableSlot `json:"slots"`
}

// BookableSlot время, которое агент может предложить
type BookableSlot struct {
	Time          string `json:"time"`
	Timestamp     string `json:"timestamp"`
	SchedulingURL string `json:"scheduling_url"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkTimes.Response) *TimesResponse {
	periods := make([]string, len(resp.Periods))
	for i, p := range resp.Periods {
		periods[i] = string(p)
	}

	slots := make([]BookableSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = BookableSlot{
			Time:          s.Time,
			Timestamp:     s.Timestamp.UTC().Format(time.RFC3339),
			SchedulingURL: s.SchedulingURL,
		}
	}

	return &TimesResponse{
		Date:            resp.Date,
		ReadableDate:    resp.Readable.Start,
		Periods:         periods,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
