package function_call

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_availability"
	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

type CheckTimesUseCase interface {
	Execute(ctx context.Context, req *checkTimes.Request) (*checkTimes.Response, error)
}

type ListEventTypesUseCase interface {
	Execute(ctx context.Context) ([]domain.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
