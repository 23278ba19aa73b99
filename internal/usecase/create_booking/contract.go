package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// StateRepository интерфейс хранилища состояния
type StateRepository interface {
	Do(ctx context.Context, fn func(state *domain.AppState) error) error
}

// UserRepository интерфейс таблицы сотрудников
type UserRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.User, error)
}

// AvailabilityChecker интерфейс проверки дат и времени
type AvailabilityChecker interface {
	Policy() domain.BookingPolicy
	IsDateSelectable(date types.DateString, now time.Time) bool
	IsOnGrid(t types.TimeString) bool
	IsTimeRangeAvailable(
		date types.DateString,
		start types.TimeString,
		end types.TimeString,
		bookings []*domain.Booking,
		slotID string,
		now time.Time,
	) bool
}

// Metrics счетчики событий бронирования
type Metrics interface {
	BookingEvent(status string, count int)
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator func() string

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
