package check_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/availability"
)

// CalendlyClient интерфейс клиента Calendly
type CalendlyClient interface {
	GetAvailableTimes(ctx context.Context, eventTypeID string, start, end time.Time) ([]domain.RawSlot, error)
	GetEventTypes(ctx context.Context) ([]calendly.EventType, error)
}

// WindowCalculator интерфейс калькулятора интервала запроса
type WindowCalculator interface {
	ComputeRange(in availability.Input) (*domain.DateRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
