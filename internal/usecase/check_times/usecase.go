package check_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/availability"
)

// UseCase use case для получения конкретных времен на выбранный день
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

// Execute выполняет use case получения времен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (до любых сетевых вызовов)
	periods, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckTimes: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckTimes: event_type=%s, date=%s, period=%q", req.EventTypeID, req.Date, req.Period)

	// 2. Вычисляем интервал на выбранный день
	dateRange, err := uc.calculator.ComputeRange(availability.Input{SpecificDate: req.Date})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			uc.logger.Warn("CheckTimes: invalid date %q: %v", req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckTimes: failed to compute range: %v", err)
		return nil, err
	}

	// 3. Определяем длительность события
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		Periods:         periods,
		DurationMinutes: duration,
		Readable:        dateRange.Readable,
		Slots:           []domain.BookableSlot{},
	}

	// Рабочий день уже закончился
	if dateRange.IsEmpty() {
		uc.logger.Info("CheckTimes: empty range for date=%s, skipping provider call", req.Date)
		return response, nil
	}

	// 4. Получаем слоты у провайдера
	rawSlots, err := uc.calendlyClient.GetAvailableTimes(ctx, req.EventTypeID, dateRange.Start, dateRange.End)
	if err != nil {
		uc.logger.Error("CheckTimes: failed to get available times for event_type=%s: %v", req.EventTypeID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	// 5. Раскладываем на конкретные времена; периоды идут в хронологическом порядке,
	// поэтому конкатенация сохраняет сортировку внутри одного дня
	for _, period := range periods {
		slots, err := availability.Expand(rawSlots, period, duration)
		if err != nil {
			uc.logger.Warn("CheckTimes: failed to expand slots: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		response.Slots = append(response.Slots, slots...)
	}

	uc.logger.Info("CheckTimes: %d raw slots -> %d bookable slots for event_type=%s, date=%s",
		len(rawSlots), len(response.Slots), req.EventTypeID, req.Date)

	return response, nil
}

// resolveDuration берет длительность из запроса или из каталога типов событий
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if req.DurationMinutes != nil {
		return *req.DurationMinutes, nil
	}

	eventTypes, err := uc.calendlyClient.GetEventTypes(ctx)
	if err != nil {
		uc.logger.Error("CheckTimes: failed to get event types: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	for _, eventType := range eventTypes {
		if eventType.URI == req.EventTypeID && eventType.Duration > 0 {
			return eventType.Duration, nil
		}
	}

	uc.logger.Warn("CheckTimes: event_type=%s not found in catalog, using default duration %d min",
		req.EventTypeID, domain.DefaultEventDurationMinutes)
	return domain.DefaultEventDurationMinutes, nil
}
