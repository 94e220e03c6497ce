package availability

import (
	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// Summarize сворачивает слоты провайдера в сводку по дням недели.
//
// Ключ - название дня недели (UTC), а не дата: если один и тот же день недели
// встречается на разных датах, они схлопываются в одну запись с датой первого вхождения.
// Часы вне утреннего и дневного периодов не отмечают ни один из флагов.
func Summarize(slots []domain.RawSlot) map[string]domain.DaySummary {
	summary := make(map[string]domain.DaySummary)

	for _, slot := range slots {
		start := slot.StartTime.UTC()
		dayName := start.Weekday().String()

		day, ok := summary[dayName]
		if !ok {
			day = domain.DaySummary{Date: start.Format(domain.DateFormat)}
		}

		if period, ok := domain.PeriodForHour(start.Hour()); ok {
			switch period {
			case domain.PeriodMorning:
				day.Morning = true
			case domain.PeriodAfternoon:
				day.Afternoon = true
			}
		}

		summary[dayName] = day
	}

	return summary
}
