package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет формат входных данных
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return fmt.Errorf("%w: employee id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !req.EndTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	return nil
}

// validateTimes проверяет, что начало и окончание лежат на сетке слотов
func validateTimes(checker AvailabilityChecker, req *Request) error {
	if !checker.IsOnGrid(req.StartTime) {
		return fmt.Errorf("%w: start time %s", ErrInvalidTimeSlot, req.StartTime)
	}
	if !checker.IsOnGrid(req.EndTime) {
		return fmt.Errorf("%w: end time %s", ErrInvalidTimeSlot, req.EndTime)
	}
	return nil
}
