package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPRecorder сбор метрик обработанных запросов
type HTTPRecorder interface {
	ObserveHTTP(method, route, status string, duration time.Duration)
}
