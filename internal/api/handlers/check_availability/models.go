package check_availability

import (
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VoiceScheduler/internal/usecase/check_availability"
)

const (
	flagYes = "YES"
	flagNo  = "NO"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Summary   map[string]DaySummary `json:"summary"`
	DateRange ReadableRange         `json:"dateRange"`
	QueryFrom string                `json:"queryFrom"`
	QueryTo   string                `json:"queryTo"`
}

// DaySummary сводка по дню в формате для голосового агента
type DaySummary struct {
	Date      string `json:"date"`
	Morning   string `json:"morning"`   // YES | NO
	Afternoon string `json:"afternoon"` // YES | NO
}

// ReadableRange человекочитаемые границы недели
type ReadableRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	summary := make(map[string]DaySummary, len(resp.Summary))
	for day, s := range resp.Summary {
		summary[day] = FromDomainSummary(s)
	}

	return &AvailabilityResponse{
		Summary: summary,
		DateRange: ReadableRange{
			Start: resp.Readable.Start,
			End:   resp.Readable.End,
		},
		QueryFrom: resp.Range.Start.UTC().Format(time.RFC3339),
		QueryTo:   resp.Range.End.UTC().Format(time.RFC3339),
	}
}

// FromDomainSummary переводит флаги в YES/NO
func FromDomainSummary(s domain.DaySummary) DaySummary {
	return DaySummary{
		Date:      s.Date,
		Morning:   yesNo(s.Morning),
		Afternoon: yesNo(s.Afternoon),
	}
}

func yesNo(v bool) string {
	if v {
		return flagYes
	}
	return flagNo
}
