package function_call

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Имена функций, которые может вызвать голосовой агент
const (
	FunctionCheckAvailability = "checkAvailability"
	FunctionCheckTimes        = "checkTimes"
	FunctionGetEventTypes     = "getEventTypes"
)

// FunctionCallRequest вызов функции от голосового агента
type FunctionCallRequest struct {
	Name       string          `json:"name"`
	Parameters json.RawMessage `json:"parameters"`
}

// FunctionCallResponse результат вызова функции
type FunctionCallResponse struct {
	Result interface{} `json:"result"`
}

// CheckAvailabilityParams параметры checkAvailability
type CheckAvailabilityParams struct {
	WeekOffset   *FlexibleInt `json:"weekOffset"`
	EventTypeURL string       `json:"eventTypeUrl"`
	EventType    string       `json:"eventType"` // Альтернативное имя параметра
}

// CheckTimesParams параметры checkTimes
type CheckTimesParams struct {
	Date         string       `json:"date"`
	EventTypeURL string       `json:"eventTypeUrl"`
	EventType    string       `json:"eventType"`
	Period       string       `json:"period"`
	Duration     *FlexibleInt `json:"duration"`
}

// EventTypeID возвращает идентификатор типа события из любого из двух полей
func (p CheckAvailabilityParams) EventTypeID() string {
	return firstNonEmpty(p.EventTypeURL, p.EventType)
}

// EventTypeID возвращает идентификатор типа события из любого из двух полей
func (p CheckTimesParams) EventTypeID() string {
	return firstNonEmpty(p.EventTypeURL, p.EventType)
}

// FlexibleInt целое, которое агент может прислать числом или строкой ("1")
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("expected integer, got %s", string(data))
	}

	*f = FlexibleInt(v)
	return nil
}

// IntPtr конвертирует в *int
func (f *FlexibleInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// decodeParams декодирует параметры; отсутствующие параметры трактуются как пустой объект
func decodeParams(raw json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
