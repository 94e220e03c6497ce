package list_event_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	listEventTypes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/list_event_types"
)

const (
	msgUpstreamUnavailable = "calendar service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase ListEventTypesUseCase
	logger  Logger
}

func NewHandler(useCase ListEventTypesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendly/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		if errors.Is(err, listEventTypes.ErrUpstreamUnavailable) {
			h.logger.Error("GET /calendly/event-types - Upstream unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
			return
		}
		h.logger.Error("GET /calendly/event-types - Failed to list event types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendly/event-types - Event types retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, EventTypesResponse{EventTypes: FromDomain(result)})
}
