package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	EmployeeID string           // Табельный номер сотрудника
	SlotID     string           // ID места, например "US-P07"
	Date       types.DateString // Дата бронирования
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	EndTime    types.TimeString // Время окончания (например, "11:30")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	SlotID       string
	EmployeeID   string
	Section      string
	BookedAt     time.Time
	BookingDate  types.DateString
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       string
	ReminderText string
}
