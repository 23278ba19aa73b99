package auth_login

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.PendingLogin, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
