package worker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Job периодическая задача
type Job interface {
	Run(ctx context.Context)
}

// BookingCompleter завершает бронирования, время которых истекло
type BookingCompleter interface {
	CompleteFinished(ctx context.Context) (int, error)
}

// StateRepository интерфейс хранилища состояния
type StateRepository interface {
	Load(ctx context.Context) *domain.AppState
}

// UserRepository интерфейс таблицы сотрудников
type UserRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.User, error)
}

// Notifier канал доставки напоминаний
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, user domain.User, title, message string) error
}

// Metrics счетчик отправленных напоминаний
type Metrics interface {
	ReminderSent(channel string, err error)
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
