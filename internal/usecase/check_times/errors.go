package check_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_times: invalid input data")

	// ErrUpstreamUnavailable возвращается, когда провайдер расписаний недоступен
	ErrUpstreamUnavailable = errors.New("check_times: scheduling provider unavailable")
)
