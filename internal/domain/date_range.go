package domain

import "time"

// DateRange интервал, по которому запрашивается доступность у провайдера
type DateRange struct {
	Start    time.Time
	End      time.Time
	Readable ReadableRange
}

// ReadableRange человекочитаемые границы интервала для голосового ответа
type ReadableRange struct {
	Start string
	End   string
}

// IsEmpty returns true if the range has no duration
func (r *DateRange) IsEmpty() bool {
	return !r.End.After(r.Start)
}
