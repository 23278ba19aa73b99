package get_slot_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// StateRepository интерфейс хранилища состояния
type StateRepository interface {
	Load(ctx context.Context) *domain.AppState
}

// AvailabilityChecker интерфейс расчета доступности
type AvailabilityChecker interface {
	Policy() domain.BookingPolicy
	AvailableDates(now time.Time) []types.DateString
	IsDateSelectable(date types.DateString, now time.Time) bool
	TimeSlotsFor(date types.DateString, bookings []*domain.Booking, slotID string, now time.Time) []domain.TimeSlot
	AvailableStartTimes(date types.DateString, bookings []*domain.Booking, slotID string, now time.Time) []types.TimeString
	AvailableEndTimes(
		date types.DateString,
		start types.TimeString,
		bookings []*domain.Booking,
		slotID string,
		now time.Time,
	) []types.TimeString
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
