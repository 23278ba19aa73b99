package domain

// Значения политики бронирования по умолчанию
const (
	DefaultDayStart           = "06:00"
	DefaultLastSlotStart      = "22:30"
	DefaultIntervalMinutes    = 30
	DefaultAdvanceBookingDays = 2 // сегодня, завтра и послезавтра
	DefaultTimezone           = "Asia/Kolkata"
	DefaultReminderLead       = 2 // минуты до начала бронирования
)

// Параметры генерации парковочных мест
const (
	DefaultSlotsPerSection   = 40
	DefaultAvailabilityRatio = 0.75
	OtherUserEmployeeID      = "OTHER_USER"
)

// Ограничения валидации
const (
	MinEmployeeIDLength = 3
	MinPasswordLength   = 6
	OTPLength           = 4
)

// StateKey ключ, под которым хранится состояние приложения
const StateKey = "gupio-parking-data"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие место
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
