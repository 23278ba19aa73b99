package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UserRepository интерфейс таблицы сотрудников
type UserRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.User, error)
}

// StateRepository интерфейс хранилища состояния
type StateRepository interface {
	Load(ctx context.Context) *domain.AppState
	Do(ctx context.Context, fn func(state *domain.AppState) error) error
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
