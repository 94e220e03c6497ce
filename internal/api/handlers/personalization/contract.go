package personalization

import "time"

// Clock источник текущего времени в зоне рабочих часов
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
