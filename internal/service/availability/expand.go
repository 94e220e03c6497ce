package availability

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

const maxDurationMinutes = math.MaxInt64 / int64(time.Minute)

// Expand раскладывает слоты провайдера выбранного периода на конкретные времена
// с шагом в длительность события и сортирует их по времени.
//
// Последний неполный шаг тоже попадает в результат: слот не отбрасывается из-за того,
// что выходит за конец интервала провайдера.
func Expand(slots []domain.RawSlot, period domain.Period, eventDurationMinutes int) ([]domain.BookableSlot, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, period)
	}
	if eventDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: event duration must be positive, got %d", ErrInvalidInput, eventDurationMinutes)
	}
	// Шаг должен помещаться в time.Duration, иначе переполнение дает отрицательный шаг
	if int64(eventDurationMinutes) > maxDurationMinutes {
		return nil, fmt.Errorf("%w: event duration is too large, got %d", ErrInvalidInput, eventDurationMinutes)
	}

	step := time.Duration(eventDurationMinutes) * time.Minute
	result := make([]domain.BookableSlot, 0)

	for _, slot := range slots {
		if !period.ContainsHour(slot.StartTime.UTC().Hour()) {
			continue
		}

		end := slot.End(step)
		for current := slot.StartTime; current.Before(end); current = current.Add(step) {
			result = append(result, domain.BookableSlot{
				Time:          current.UTC().Format(domain.SlotTimeFormat),
				Timestamp:     current,
				SchedulingURL: slot.SchedulingURL,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	return result, nil
}
