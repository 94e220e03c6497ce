package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrUpstreamUnavailable возвращается, когда провайдер расписаний недоступен
	ErrUpstreamUnavailable = errors.New("check_availability: scheduling provider unavailable")
)
