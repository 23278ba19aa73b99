package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований сотрудника
type GetUserBookingsRequest struct {
	EmployeeID string
	Status     *string
}

// ListBookingsRequest запрос на получение всех бронирований с фильтрами
type ListBookingsRequest struct {
	Status *string
	Date   *string
	SlotID *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{SlotID: r.SlotID}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := types.NewDateStringFromString(*r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string    `json:"id"`
	SlotID         string    `json:"slotId"`
	EmployeeID     string    `json:"employeeId"`
	Section        string    `json:"section"`
	BookedAt       time.Time `json:"bookedAt"`
	BookingDate    string    `json:"bookingDate"`              // "2025-10-15"
	BookingTime    string    `json:"bookingTime"`              // "10:00"
	BookingEndTime string    `json:"bookingEndTime,omitempty"` // "11:30"
	Status         string    `json:"status"`
}

// ActiveBookingResponse текущее бронирование сотрудника с напоминанием
type ActiveBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	ReminderText string          `json:"reminderText"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		SlotID:         b.SlotID,
		EmployeeID:     b.EmployeeID,
		Section:        string(b.Section),
		BookedAt:       b.BookedAt,
		BookingDate:    b.BookingDate.String(),
		BookingTime:    b.StartTime.String(),
		BookingEndTime: b.EndTime.String(),
		Status:         string(b.Status),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
