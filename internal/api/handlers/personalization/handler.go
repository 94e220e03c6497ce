package personalization

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

type Handler struct {
	clock  Clock
	logger Logger
}

func NewHandler(clock Clock, logger Logger) *Handler {
	return &Handler{
		clock:  clock,
		logger: logger,
	}
}

// Handle POST /api/elevenlabs/personalization
// Тело запроса опционально; некорректное тело не мешает выдаче переменных
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PersonalizationRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /elevenlabs/personalization - Ignoring invalid body: %v", err)
		}
	}

	vars := NewDynamicVariables(h.clock.Now().In(h.clock.Location()))

	h.logger.Info("POST /elevenlabs/personalization - Context issued: conversation_id=%s, date=%s, timezone=%s",
		req.ConversationID, vars.CurrentISODate, vars.Timezone)
	handlers.RespondJSON(w, http.StatusOK, PersonalizationResponse{DynamicVariables: vars})
}
