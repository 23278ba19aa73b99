package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда места нет в состоянии
	ErrSlotNotFound = errors.New("slots.service: slot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
