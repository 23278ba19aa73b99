package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// LoginRequest данные формы входа
type LoginRequest struct {
	EmployeeID string `json:"employeeId" validate:"min=3"`
	Password   string `json:"password" validate:"min=6"`
}

// OTPRequest данные формы подтверждения
type OTPRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	OTP        string `json:"otp" validate:"number,len=4"`
}

// PendingLogin вход, ожидающий подтверждения кодом
type PendingLogin struct {
	EmployeeID string
	ExpiresAt  time.Time
}

// Session результат подтверждения OTP
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// SessionInfo восстановленное из состояния состояние входа
type SessionInfo struct {
	User            *domain.User
	IsAuthenticated bool
	Greeting        string
}
