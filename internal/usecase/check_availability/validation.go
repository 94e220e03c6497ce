package check_availability

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EventTypeID) == "" {
		return fmt.Errorf("%w: eventTypeId is required", ErrInvalidInput)
	}

	if req.WeekOffset != nil && *req.WeekOffset < 0 {
		return fmt.Errorf("%w: weekOffset must not be negative", ErrInvalidInput)
	}

	return nil
}
