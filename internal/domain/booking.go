package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid проверяет, что статус входит в перечисление
func (s BookingStatus) IsValid() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusCancelled
}

// Booking бронирование парковочного места сотрудником
type Booking struct {
	ID          string           `json:"id"`
	SlotID      string           `json:"slotId"`
	EmployeeID  string           `json:"employeeId"`
	BookedAt    time.Time        `json:"bookedAt"`
	Section     Section          `json:"section"`
	BookingDate types.DateString `json:"bookingDate"`
	StartTime   types.TimeString `json:"bookingTime"`
	EndTime     types.TimeString `json:"bookingEndTime,omitempty"`
	Status      BookingStatus    `json:"status"`
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// StartsAt момент начала бронирования в локации loc
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return b.StartTime.OnDate(b.BookingDate, loc)
}

// EndsAt момент окончания бронирования
// Для записей без времени окончания длительность равна одному интервалу
func (b *Booking) EndsAt(loc *time.Location, intervalMinutes int) (time.Time, error) {
	if b.EndTime.IsZero() {
		start, err := b.StartsAt(loc)
		if err != nil {
			return time.Time{}, err
		}
		return start.Add(time.Duration(intervalMinutes) * time.Minute), nil
	}
	return b.EndTime.OnDate(b.BookingDate, loc)
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	EmployeeID *string
	SlotID     *string
	Date       *types.DateString
	Status     *BookingStatus
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.EmployeeID != nil && b.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.SlotID != nil && b.SlotID != *f.SlotID {
		return false
	}
	if f.Date != nil && b.BookingDate != *f.Date {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	return true
}
