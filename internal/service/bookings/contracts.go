package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// StateRepository интерфейс хранилища состояния
type StateRepository interface {
	Load(ctx context.Context) *domain.AppState
	Do(ctx context.Context, fn func(state *domain.AppState) error) error
}

// Metrics счетчики событий бронирования
type Metrics interface {
	BookingEvent(status string, count int)
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
