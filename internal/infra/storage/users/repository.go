package users

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Repository статическая таблица сотрудников, загружается из конфигурации
type Repository struct {
	byID map[string]domain.User
}

// NewRepository создает репозиторий; табельные номера сравниваются точно
func NewRepository(users []domain.User) *Repository {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.EmployeeID] = u
	}
	return &Repository{byID: byID}
}

// GetByEmployeeID возвращает сотрудника по табельному номеру
func (r *Repository) GetByEmployeeID(_ context.Context, employeeID string) (*domain.User, error) {
	u, ok := r.byID[employeeID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
