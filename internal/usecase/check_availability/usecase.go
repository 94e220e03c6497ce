package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/availability"
)

// UseCase use case для обзора доступных дней недели
type UseCase struct {
	calendlyClient CalendlyClient
	calculator     WindowCalculator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendlyClient CalendlyClient, calculator WindowCalculator, logger Logger) *UseCase {
	return &UseCase{
		calendlyClient: calendlyClient,
		calculator:     calculator,
		logger:         logger,
	}
}

// Execute выполняет use case обзора доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	weekOffset := 0
	if req.WeekOffset != nil {
		weekOffset = *req.WeekOffset
	}

	uc.logger.Info("CheckAvailability: event_type=%s, week_offset=%d", req.EventTypeID, weekOffset)

	// 2. Вычисляем интервал запроса
	dateRange, err := uc.calculator.ComputeRange(availability.Input{WeekOffset: &weekOffset})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			uc.logger.Warn("CheckAvailability: invalid range input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckAvailability: failed to compute range: %v", err)
		return nil, err
	}

	// 3. Интервал может схлопнуться (конец недели) - провайдер такой запрос не примет
	slots := []domain.RawSlot{}
	if !dateRange.IsEmpty() {
		slots, err = uc.calendlyClient.GetAvailableTimes(ctx, req.EventTypeID, dateRange.Start, dateRange.End)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get available times for event_type=%s: %v", req.EventTypeID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
	} else {
		uc.logger.Info("CheckAvailability: empty range for week_offset=%d, skipping provider call", weekOffset)
	}

	// 4. Сворачиваем слоты в сводку по дням
	summary := availability.Summarize(slots)

	uc.logger.Info("CheckAvailability: %d raw slots -> %d days for event_type=%s",
		len(slots), len(summary), req.EventTypeID)

	return &Response{
		Summary:  summary,
		Readable: dateRange.Readable,
		Range:    *dateRange,
	}, nil
}
