package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда сотрудника нет в таблице
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrSlotNotFound возвращается, когда места нет в состоянии
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда место уже занято
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDateOutOfRange возвращается, когда дата раньше сегодня или дальше окна бронирования
	ErrDateOutOfRange = errors.New("create_booking: date is out of booking window")

	// ErrInvalidTimeSlot возвращается, когда время начала или окончания не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTimeRangeNotAvailable возвращается, когда диапазон в прошлом или пересекается с активным бронированием
	ErrTimeRangeNotAvailable = errors.New("create_booking: time range is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
