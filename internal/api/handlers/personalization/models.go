package personalization

import (
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

// PersonalizationRequest данные начала разговора от голосовой платформы.
// Все поля опциональны и используются только для логов
type PersonalizationRequest struct {
	CallerID       string `json:"caller_id"`
	AgentID        string `json:"agent_id"`
	CalledNumber   string `json:"called_number"`
	ConversationID string `json:"conversation_id"`
}

// PersonalizationResponse динамические переменные для агента
type PersonalizationResponse struct {
	DynamicVariables DynamicVariables `json:"dynamic_variables"`
}

// DynamicVariables переменные, подставляемые в промпт агента
type DynamicVariables struct {
	CurrentDate     string `json:"current_date"`
	CurrentTime     string `json:"current_time"`
	CurrentISODate  string `json:"current_iso_date"`
	CurrentWeekday  string `json:"current_weekday"`
	Timezone        string `json:"timezone"`
	WorkdayStartsAt string `json:"workday_starts_at"`
	WorkdayEndsAt   string `json:"workday_ends_at"`
}

// NewDynamicVariables формирует переменные для момента now в его зоне
func NewDynamicVariables(now time.Time) DynamicVariables {
	workdayStart := time.Date(now.Year(), now.Month(), now.Day(), domain.WorkdayStartHour, 0, 0, 0, now.Location())
	workdayEnd := time.Date(now.Year(), now.Month(), now.Day(), domain.WorkdayEndHour, 0, 0, 0, now.Location())

	return DynamicVariables{
		CurrentDate:     now.Format(domain.ReadableDayFormat),
		CurrentTime:     now.Format(domain.SlotTimeFormat),
		CurrentISODate:  now.Format(domain.DateFormat),
		CurrentWeekday:  now.Weekday().String(),
		Timezone:        now.Location().String(),
		WorkdayStartsAt: workdayStart.Format(domain.SlotTimeFormat),
		WorkdayEndsAt:   workdayEnd.Format(domain.SlotTimeFormat),
	}
}
