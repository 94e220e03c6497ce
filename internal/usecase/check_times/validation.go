package check_times

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает периоды для выборки
func validateRequest(req *Request) ([]domain.Period, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EventTypeID) == "" {
		return nil, fmt.Errorf("%w: eventTypeId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		if *req.DurationMinutes > domain.MaxEventDurationMinutes {
			return nil, fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxEventDurationMinutes)
		}
	}

	if strings.TrimSpace(req.Period) == "" {
		return domain.Periods, nil
	}

	period, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return []domain.Period{period}, nil
}
