package domain

import (
	"fmt"
	"strings"
)

// Period половина дня, в которую собеседник хочет встречу
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// Periods все поддерживаемые периоды в хронологическом порядке
var Periods = []Period{PeriodMorning, PeriodAfternoon}

// ParsePeriod разбирает период из параметра запроса
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodMorning:
		return PeriodMorning, nil
	case PeriodAfternoon:
		return PeriodAfternoon, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// IsValid returns true if the period is one of the known values
func (p Period) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// ContainsHour проверяет, попадает ли час (UTC) в период
func (p Period) ContainsHour(hour int) bool {
	switch p {
	case PeriodMorning:
		return hour >= MorningStartHour && hour < MorningEndHour
	case PeriodAfternoon:
		return hour >= AfternoonStartHour && hour < AfternoonEndHour
	default:
		return false
	}
}

// PeriodForHour возвращает период для часа (UTC); false, если час вне обоих периодов
func PeriodForHour(hour int) (Period, bool) {
	for _, p := range Periods {
		if p.ContainsHour(hour) {
			return p, true
		}
	}
	return "", false
}
