package auth_otp

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

type AuthService interface {
	VerifyOTP(ctx context.Context, req models.OTPRequest) (*models.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
