package check_times

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
)

const (
	msgMissingEventType    = "eventType is required"
	msgMissingDate         = "date is required"
	msgInvalidDuration     = "duration must be a whole number of minutes between 1 and 1440"
	msgInvalidInput        = "invalid request: expected date in YYYY-MM-DD format and period morning or afternoon"
	msgUpstreamUnavailable = "calendar service is temporarily unavailable, please try again"
)

type Handler struct {
	useCase CheckTimesUseCase
	logger  Logger
}

func NewHandler(useCase CheckTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendly/times
// Query params: eventType (required), date (required, YYYY-MM-DD), period (morning|afternoon), duration (minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	eventType := strings.TrimSpace(query.Get("eventType"))
	if eventType == "" {
		h.logger.Warn("GET /calendly/times - Missing event type")
		handlers.RespondBadRequest(w, msgMissingEventType)
		return
	}

	date := strings.TrimSpace(query.Get("date"))
	if date == "" {
		h.logger.Warn("GET /calendly/times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	req := &checkTimes.Request{
		Date:        date,
		EventTypeID: eventType,
		Period:      query.Get("period"),
	}

	if raw := strings.TrimSpace(query.Get("duration")); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil || duration <= 0 || duration > domain.MaxEventDurationMinutes {
			h.logger.Warn("GET /calendly/times - Invalid duration %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		req.DurationMinutes = &duration
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkTimes.ErrInvalidInput):
			h.logger.Warn("GET /calendly/times - Invalid input: event_type=%s, date=%s, error=%v", eventType, date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkTimes.ErrUpstreamUnavailable):
			h.logger.Error("GET /calendly/times - Upstream unavailable: event_type=%s, date=%s, error=%v", eventType, date, err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /calendly/times - Failed to check times: event_type=%s, date=%s, error=%v", eventType, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendly/times - Times retrieved: event_type=%s, date=%s, slots_count=%d",
		eventType, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
