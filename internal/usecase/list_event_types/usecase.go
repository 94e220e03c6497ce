package list_event_types

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"
)

// UseCase use case для получения каталога типов событий
type UseCase struct {
	calendlyClient CalendlyClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendlyClient CalendlyClient, logger Logger) *UseCase {
	return &UseCase{
		calendlyClient: calendlyClient,
		logger:         logger,
	}
}

// Execute возвращает типы событий в доменной модели (только переименование полей)
func (uc *UseCase) Execute(ctx context.Context) ([]domain.EventType, error) {
	items, err := uc.calendlyClient.GetEventTypes(ctx)
	if err != nil {
		uc.logger.Error("ListEventTypes: failed to get event types: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	result := make([]domain.EventType, 0, len(items))
	for _, item := range items {
		result = append(result, ToDomain(item))
	}

	uc.logger.Info("ListEventTypes: fetched %d event types", len(result))
	return result, nil
}

// ToDomain проецирует тип события Calendly в доменную модель
func ToDomain(item calendly.EventType) domain.EventType {
	description := ""
	if item.DescriptionPlain != nil {
		description = *item.DescriptionPlain
	}

	return domain.EventType{
		ID:              item.URI,
		Name:            item.Name,
		DurationMinutes: item.Duration,
		Description:     description,
		SchedulingURL:   item.SchedulingURL,
	}
}
