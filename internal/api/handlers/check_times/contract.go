package check_times

import (
	"context"

	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
)

type CheckTimesUseCase interface {
	Execute(ctx context.Context, req *checkTimes.Request) (*checkTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
