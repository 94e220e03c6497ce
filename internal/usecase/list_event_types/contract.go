package list_event_types

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"
)

// CalendlyClient интерфейс клиента Calendly
type CalendlyClient interface {
	GetEventTypes(ctx context.Context) ([]calendly.EventType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
