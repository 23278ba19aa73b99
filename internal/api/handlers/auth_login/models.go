package auth_login

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *LoginRequest) ToServiceRequest() models.LoginRequest {
	return models.LoginRequest{
		EmployeeID: r.EmployeeID,
		Password:   r.Password,
	}
}

// LoginResponse HTTP response model
type LoginResponse struct {
	EmployeeID   string    `json:"employeeId"`
	OTPExpiresAt time.Time `json:"otpExpiresAt"`
	Message      string    `json:"message"`
}
