package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// Input параметры расчета интервала: либо смещение в неделях, либо конкретная дата
type Input struct {
	WeekOffset   *int   // 0 - текущая неделя, 1 - следующая и т.д.
	SpecificDate string // YYYY-MM-DD, имеет приоритет над WeekOffset
}

// Calculator рассчитывает интервал запроса доступности у провайдера
type Calculator struct {
	timeProvider TimeProvider
	location     *time.Location
}

// NewCalculator создает калькулятор интервалов.
// location задает "локальное" время, в котором считаются рабочие часы и границы недели
func NewCalculator(timeProvider TimeProvider, location *time.Location) *Calculator {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if location == nil {
		location = time.Local
	}
	return &Calculator{
		timeProvider: timeProvider,
		location:     location,
	}
}

// Now возвращает текущее время в локации калькулятора
func (c *Calculator) Now() time.Time {
	return c.timeProvider.Now().In(c.location)
}

// Location возвращает локацию, в которой считаются рабочие часы
func (c *Calculator) Location() *time.Location {
	return c.location
}

// ComputeRange вычисляет интервал [Start, End] для запроса доступности.
// Start никогда не раньше текущего момента, кроме явно запрошенной прошедшей даты
func (c *Calculator) ComputeRange(in Input) (*domain.DateRange, error) {
	now := c.Now()

	if strings.TrimSpace(in.SpecificDate) != "" {
		date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(in.SpecificDate), c.location)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format: %v", ErrInvalidInput, err)
		}
		return c.dayRange(date, now), nil
	}

	if in.WeekOffset == nil {
		return nil, fmt.Errorf("%w: either weekOffset or date is required", ErrInvalidInput)
	}

	offset := *in.WeekOffset
	if offset < 0 {
		return nil, fmt.Errorf("%w: weekOffset must not be negative, got %d", ErrInvalidInput, offset)
	}

	if offset == 0 {
		return c.currentWeekRange(now), nil
	}

	return c.futureWeekRange(now, offset), nil
}

// dayRange интервал для конкретной даты
func (c *Calculator) dayRange(date, now time.Time) *domain.DateRange {
	// Для сегодняшнего дня ограничиваем интервал рабочими часами и "сейчас + буфер"
	if isSameDay(date, now) {
		workdayStart := atHour(date, domain.WorkdayStartHour)
		workdayEnd := atHour(date, domain.WorkdayEndHour)

		start := later(now.Add(domain.SafetyBuffer), workdayStart)
		if start.After(workdayEnd) {
			start = workdayEnd
		}

		return newRange(start, workdayEnd)
	}

	// Любая другая дата (в том числе прошедшая) - весь день целиком
	start := startOfDay(date)
	return newRange(start, endOfDay(start))
}

// currentWeekRange интервал текущей недели, обрезанный слева текущим временем и буфером
func (c *Calculator) currentWeekRange(now time.Time) *domain.DateRange {
	weekStart := startOfWeek(now)
	weekEnd := endOfDay(weekStart.AddDate(0, 0, 6))

	start := later(now, weekStart)
	if minStart := now.Add(domain.SchedulingBuffer); start.Before(minStart) {
		start = minStart
	}
	if start.After(weekEnd) {
		start = weekEnd
	}

	return &domain.DateRange{
		Start: start,
		End:   weekEnd,
		// В голосовом ответе называем неделю целиком, а не обрезанный интервал
		Readable: readable(weekStart, weekEnd),
	}
}

// futureWeekRange неделя через offset недель; всегда целиком в будущем
func (c *Calculator) futureWeekRange(now time.Time, offset int) *domain.DateRange {
	monday := nextMonday(now)
	if offset > 1 {
		monday = monday.AddDate(0, 0, (offset-1)*7)
	}
	return newRange(monday, endOfDay(monday.AddDate(0, 0, 6)))
}

func newRange(start, end time.Time) *domain.DateRange {
	return &domain.DateRange{
		Start:    start,
		End:      end,
		Readable: readable(start, end),
	}
}

func readable(start, end time.Time) domain.ReadableRange {
	return domain.ReadableRange{
		Start: start.Format(domain.ReadableDayFormat),
		End:   end.Format(domain.ReadableDayFormat),
	}
}

// nextMonday ближайший понедельник строго после даты (из понедельника - через неделю)
func nextMonday(date time.Time) time.Time {
	diff := 8 - int(date.Weekday())
	if date.Weekday() == time.Sunday {
		diff = 1
	}
	return startOfDay(date).AddDate(0, 0, diff)
}

// startOfWeek понедельник 00:00 недели, в которую входит дата
func startOfWeek(date time.Time) time.Time {
	diff := int(date.Weekday()) - int(time.Monday)
	if date.Weekday() == time.Sunday {
		diff = 6
	}
	return startOfDay(date).AddDate(0, 0, -diff)
}

func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func endOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), date.Location())
}

func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
