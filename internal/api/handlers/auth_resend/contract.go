package auth_resend

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

type AuthService interface {
	ResendOTP(ctx context.Context, employeeID string) (*models.PendingLogin, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
