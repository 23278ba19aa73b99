package get_slot_availability

import (
	"fmt"
	"strings"
)

// validateRequest проверяет формат входных данных
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
