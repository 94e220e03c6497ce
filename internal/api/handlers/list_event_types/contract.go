package list_event_types

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

type ListEventTypesUseCase interface {
	Execute(ctx context.Context) ([]domain.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
