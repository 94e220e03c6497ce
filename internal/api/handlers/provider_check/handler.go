package provider_check

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

const msgProviderUnavailable = "calendar provider is unreachable"

type Handler struct {
	client CalendlyClient
	logger Logger
}

func NewHandler(client CalendlyClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/calendly-test
// Не требует аутентификации, наружу отдает только факт ошибки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventTypes, err := h.client.GetEventTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /calendly-test - Provider check failed: %v", err)
		handlers.RespondJSON(w, http.StatusBadGateway, ProviderCheckResponse{
			Success: false,
			Error:   msgProviderUnavailable,
		})
		return
	}

	h.logger.Info("GET /calendly-test - Provider reachable: event_types=%d", len(eventTypes))
	handlers.RespondJSON(w, http.StatusOK, ProviderCheckResponse{
		Success:        true,
		EventTypeCount: len(eventTypes),
		EventTypes:     eventTypes,
	})
}
