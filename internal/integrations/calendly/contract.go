package calendly

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpstreamRecorder фиксирует метрики обращений к Calendly
type UpstreamRecorder interface {
	ObserveUpstream(endpoint, status string, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveUpstream(string, string, time.Duration) {}
