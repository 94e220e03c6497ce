package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_availability"
)

const (
	msgMissingEventType    = "eventType is required"
	msgInvalidWeekOffset   = "weekOffset must be a non-negative integer"
	msgInvalidInput        = "invalid availability request"
	msgUpstreamUnavailable = "calendar service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendly/availability
// Query params: eventType (required), weekOffset (optional, default 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	eventType := strings.TrimSpace(query.Get("eventType"))
	if eventType == "" {
		h.logger.Warn("GET /calendly/availability - Missing event type")
		handlers.RespondBadRequest(w, msgMissingEventType)
		return
	}

	req := &checkAvailability.Request{EventTypeID: eventType}

	if raw := strings.TrimSpace(query.Get("weekOffset")); raw != "" {
		weekOffset, err := strconv.Atoi(raw)
		if err != nil || weekOffset < 0 {
			h.logger.Warn("GET /calendly/availability - Invalid week offset %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWeekOffset)
			return
		}
		req.WeekOffset = &weekOffset
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, err, eventType)
		return
	}

	h.logger.Info("GET /calendly/availability - Availability retrieved: event_type=%s, days=%d",
		eventType, len(result.Summary))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, eventType string) {
	switch {
	case errors.Is(err, checkAvailability.ErrInvalidInput):
		h.logger.Warn("GET /calendly/availability - Invalid input: event_type=%s, error=%v", eventType, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, checkAvailability.ErrUpstreamUnavailable):
		h.logger.Error("GET /calendly/availability - Upstream unavailable: event_type=%s, error=%v", eventType, err)
		handlers.RespondBadGateway(w, msgUpstreamUnavailable)

	default:
		h.logger.Error("GET /calendly/availability - Failed to check availability: event_type=%s, error=%v", eventType, err)
		handlers.RespondInternalError(w)
	}
}
