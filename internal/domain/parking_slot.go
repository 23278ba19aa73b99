package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Section секция парковки
type Section string

const (
	SectionUS Section = "US"
	SectionLS Section = "LS"
	SectionB3 Section = "B3"
)

// Sections все секции в порядке отображения
var Sections = []Section{SectionUS, SectionLS, SectionB3}

// IsValid проверяет, что секция входит в перечисление
func (s Section) IsValid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// SlotStatus статус парковочного места
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// ParkingSlot парковочное место
// Инвариант: Status == SlotBooked тогда и только тогда, когда BookedBy != nil
type ParkingSlot struct {
	ID            string            `json:"id"`
	Section       Section           `json:"section"`
	Status        SlotStatus        `json:"status"`
	BookedBy      *string           `json:"bookedBy,omitempty"`
	BookedAt      *time.Time        `json:"bookedAt,omitempty"`
	BookedDate    *types.DateString `json:"bookedDate,omitempty"`
	BookedTime    *types.TimeString `json:"bookedTime,omitempty"`
	BookedEndTime *types.TimeString `json:"bookedEndTime,omitempty"`
}

// SlotID формирует идентификатор места, например "US-P07"
func SlotID(section Section, number int) string {
	return fmt.Sprintf("%s-P%02d", section, number)
}

// IsAvailable returns true if the slot can be booked
func (s *ParkingSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBookedBy returns true if the slot is held by the employee
func (s *ParkingSlot) IsBookedBy(employeeID string) bool {
	return s.Status == SlotBooked && s.BookedBy != nil && *s.BookedBy == employeeID
}

// IsConsistent проверяет согласованность статуса и метаданных бронирования
func (s *ParkingSlot) IsConsistent() bool {
	return (s.Status == SlotBooked) == (s.BookedBy != nil)
}

// MarkBooked переводит место в статус booked с метаданными бронирования
func (s *ParkingSlot) MarkBooked(b *Booking) {
	bookedBy := b.EmployeeID
	bookedAt := b.BookedAt
	date := b.BookingDate
	start := b.StartTime
	end := b.EndTime

	s.Status = SlotBooked
	s.BookedBy = &bookedBy
	s.BookedAt = &bookedAt
	s.BookedDate = &date
	s.BookedTime = &start
	s.BookedEndTime = &end
}

// Release освобождает место и очищает метаданные
func (s *ParkingSlot) Release() {
	s.Status = SlotAvailable
	s.BookedBy = nil
	s.BookedAt = nil
	s.BookedDate = nil
	s.BookedTime = nil
	s.BookedEndTime = nil
}

// HeldBy проверяет, что место занято именно этим бронированием
func (s *ParkingSlot) HeldBy(b *Booking) bool {
	if !s.IsBookedBy(b.EmployeeID) {
		return false
	}
	if s.BookedDate == nil || s.BookedTime == nil {
		return true
	}
	return *s.BookedDate == b.BookingDate && *s.BookedTime == b.StartTime
}

// SlotStats статистика по парковке
type SlotStats struct {
	TotalSpots     int `json:"totalSpots"`
	AvailableSpots int `json:"availableSpots"`
	OccupiedSpots  int `json:"occupiedSpots"`
}

// CalculateStats считает статистику по списку мест
func CalculateStats(slots []ParkingSlot) SlotStats {
	available := 0
	for i := range slots {
		if slots[i].IsAvailable() {
			available++
		}
	}
	return SlotStats{
		TotalSpots:     len(slots),
		AvailableSpots: available,
		OccupiedSpots:  len(slots) - available,
	}
}
