package auth_otp

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

// OTPRequest HTTP request model
type OTPRequest struct {
	EmployeeID string `json:"employeeId"`
	OTP        string `json:"otp"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *OTPRequest) ToServiceRequest() models.OTPRequest {
	return models.OTPRequest{
		EmployeeID: r.EmployeeID,
		OTP:        r.OTP,
	}
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

func FromServiceSession(s *models.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      s.User,
	}
}
