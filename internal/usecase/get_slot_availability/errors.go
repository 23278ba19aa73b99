package get_slot_availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда места нет в состоянии
	ErrSlotNotFound = errors.New("get_slot_availability: slot not found")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	ErrDateOutOfRange = errors.New("get_slot_availability: date is out of booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_availability: invalid input data")
)
