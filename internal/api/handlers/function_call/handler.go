package function_call

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	checkAvailabilityHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/check_availability"
	checkTimesHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/check_times"
	listEventTypesHandler "github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers/list_event_types"
	checkAvailability "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_availability"
	checkTimes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_times"
	listEventTypes "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/list_event_types"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingFunctionName = "function name is required"
	msgUnknownFunction     = "unknown function"
	msgInvalidParameters   = "invalid function parameters"
	msgInvalidAvailability = "eventTypeUrl is required and weekOffset must be a non-negative whole number"
	msgInvalidTimes        = "eventTypeUrl is required, date must be in YYYY-MM-DD format, period must be morning or afternoon and duration between 1 and 1440 minutes"
	msgUpstreamUnavailable = "I couldn't reach the calendar right now, please try again in a moment"
)

type Handler struct {
	checkAvailability CheckAvailabilityUseCase
	checkTimes        CheckTimesUseCase
	listEventTypes    ListEventTypesUseCase
	logger            Logger
}

func NewHandler(
	checkAvailability CheckAvailabilityUseCase,
	checkTimes CheckTimesUseCase,
	listEventTypes ListEventTypesUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		checkAvailability: checkAvailability,
		checkTimes:        checkTimes,
		listEventTypes:    listEventTypes,
		logger:            logger,
	}
}

// Handle POST /api/elevenlabs/function-handler
// Body: {"name": "checkAvailability", "parameters": {...}}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FunctionCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /elevenlabs/function-handler - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" {
		h.logger.Warn("POST /elevenlabs/function-handler - Missing function name")
		handlers.RespondBadRequest(w, msgMissingFunctionName)
		return
	}

	h.logger.Info("POST /elevenlabs/function-handler - Function call: name=%s", req.Name)

	switch req.Name {
	case FunctionCheckAvailability:
		h.handleCheckAvailability(w, r, req)
	case FunctionCheckTimes:
		h.handleCheckTimes(w, r, req)
	case FunctionGetEventTypes:
		h.handleGetEventTypes(w, r)
	default:
		h.logger.Warn("POST /elevenlabs/function-handler - Unknown function: name=%s", req.Name)
		handlers.RespondBadRequest(w, msgUnknownFunction)
	}
}

func (h *Handler) handleCheckAvailability(w http.ResponseWriter, r *http.Request, req FunctionCallRequest) {
	var params CheckAvailabilityParams
	if err := decodeParams(req.Parameters, &params); err != nil {
		h.logger.Warn("POST /elevenlabs/function-handler - Invalid %s parameters: %v", req.Name, err)
		handlers.RespondBadRequest(w, msgInvalidParameters)
		return
	}

	result, err := h.checkAvailability.Execute(r.Context(), &checkAvailability.Request{
		WeekOffset:  params.WeekOffset.IntPtr(),
		EventTypeID: params.EventTypeID(),
	})
	if err != nil {
		h.respondError(w, req.Name, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FunctionCallResponse{
		Result: checkAvailabilityHandler.FromUseCaseResponse(result),
	})
}

func (h *Handler) handleCheckTimes(w http.ResponseWriter, r *http.Request, req FunctionCallRequest) {
	var params CheckTimesParams
	if err := decodeParams(req.Parameters, &params); err != nil {
		h.logger.Warn("POST /elevenlabs/function-handler - Invalid %s parameters: %v", req.Name, err)
		handlers.RespondBadRequest(w, msgInvalidParameters)
		return
	}

	result, err := h.checkTimes.Execute(r.Context(), &checkTimes.Request{
		Date:            params.Date,
		EventTypeID:     params.EventTypeID(),
		Period:          params.Period,
		DurationMinutes: params.Duration.IntPtr(),
	})
	if err != nil {
		h.respondError(w, req.Name, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FunctionCallResponse{
		Result: checkTimesHandler.FromUseCaseResponse(result),
	})
}

func (h *Handler) handleGetEventTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.listEventTypes.Execute(r.Context())
	if err != nil {
		h.respondError(w, FunctionGetEventTypes, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FunctionCallResponse{
		Result: listEventTypesHandler.FromDomain(result),
	})
}

// respondError сопоставляет ошибки use case с ответами агенту.
// Детали ошибок провайдера только логируются
func (h *Handler) respondError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, checkAvailability.ErrInvalidInput):
		h.logger.Warn("POST /elevenlabs/function-handler - Invalid input: name=%s, error=%v", name, err)
		handlers.RespondBadRequest(w, msgInvalidAvailability)

	case errors.Is(err, checkTimes.ErrInvalidInput):
		h.logger.Warn("POST /elevenlabs/function-handler - Invalid input: name=%s, error=%v", name, err)
		handlers.RespondBadRequest(w, msgInvalidTimes)

	case errors.Is(err, checkAvailability.ErrUpstreamUnavailable),
		errors.Is(err, checkTimes.ErrUpstreamUnavailable),
		errors.Is(err, listEventTypes.ErrUpstreamUnavailable):
		h.logger.Error("POST /elevenlabs/function-handler - Upstream unavailable: name=%s, error=%v", name, err)
		handlers.RespondBadGateway(w, msgUpstreamUnavailable)

	default:
		h.logger.Error("POST /elevenlabs/function-handler - Failed: name=%s, error=%v", name, err)
		handlers.RespondInternalError(w)
	}
}
