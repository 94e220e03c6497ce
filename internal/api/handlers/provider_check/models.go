package provider_check

import "github.com/m04kA/SMC-VoiceScheduler/internal/integrations/calendly"

// ProviderCheckResponse результат проверки связи с Calendly
type ProviderCheckResponse struct {
	Success        bool                 `json:"success"`
	EventTypeCount int                  `json:"eventTypeCount"`
	EventTypes     []calendly.EventType `json:"eventTypes,omitempty"`
	Error          string               `json:"error,omitempty"`
}
