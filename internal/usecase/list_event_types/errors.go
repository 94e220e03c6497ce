package list_event_types

import "errors"

var (
	// ErrUpstreamUnavailable возвращается, когда провайдер расписаний недоступен
	ErrUpstreamUnavailable = errors.New("list_event_types: scheduling provider unavailable")
)
