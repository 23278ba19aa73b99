package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID         string `json:"slotId"`
	BookingDate    string `json:"bookingDate"`    // "2025-10-15"
	BookingTime    string `json:"bookingTime"`    // "10:00"
	BookingEndTime string `json:"bookingEndTime"` // "11:30"
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
// Формат даты и времени проверяется в use case
func (r *CreateBookingRequest) ToUseCaseRequest(employeeID string) *createBooking.Request {
	return &createBooking.Request{
		EmployeeID: employeeID,
		SlotID:     r.SlotID,
		Date:       types.DateString(r.BookingDate),
		StartTime:  types.TimeString(r.BookingTime),
		EndTime:    types.TimeString(r.BookingEndTime),
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID             string    `json:"id"`
	SlotID         string    `json:"slotId"`
	EmployeeID     string    `json:"employeeId"`
	Section        string    `json:"section"`
	BookedAt       time.Time `json:"bookedAt"`
	BookingDate    string    `json:"bookingDate"`
	BookingTime    string    `json:"bookingTime"`
	BookingEndTime string    `json:"bookingEndTime"`
	Status         string    `json:"status"`
	ReminderText   string    `json:"reminderText"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:             resp.ID,
		SlotID:         resp.SlotID,
		EmployeeID:     resp.EmployeeID,
		Section:        resp.Section,
		BookedAt:       resp.BookedAt,
		BookingDate:    resp.BookingDate.String(),
		BookingTime:    resp.StartTime.String(),
		BookingEndTime: resp.EndTime.String(),
		Status:         resp.Status,
		ReminderText:   resp.ReminderText,
	}
}
