package provider_check

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"
)

// CalendlyClient проверяется запросом списка типов событий
type CalendlyClient interface {
	GetEventTypes(ctx context.Context) ([]calendly.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
