package auth_resend

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoPendingLogin     = "OTP expired, please log in again"
	msgOTPResent          = "OTP resent to your registered mobile number"
)

// ResendRequest HTTP request model
type ResendRequest struct {
	EmployeeID string `json:"employeeId"`
}

// ResendResponse HTTP response model
type ResendResponse struct {
	EmployeeID   string    `json:"employeeId"`
	OTPExpiresAt time.Time `json:"otpExpiresAt"`
	Message      string    `json:"message"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/otp/resend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResendRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || strings.TrimSpace(req.EmployeeID) == "" {
		h.logger.Warn("POST /auth/otp/resend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pending, err := h.service.ResendOTP(r.Context(), req.EmployeeID)
	if err != nil {
		if errors.Is(err, auth.ErrNoPendingLogin) {
			h.logger.Warn("POST /auth/otp/resend - No pending login: employee_id=%s", req.EmployeeID)
			handlers.RespondUnauthorized(w, msgNoPendingLogin)
			return
		}
		h.logger.Error("POST /auth/otp/resend - Failed to resend OTP: employee_id=%s, error=%v", req.EmployeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/otp/resend - OTP resent: employee_id=%s", pending.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, ResendResponse{
		EmployeeID:   pending.EmployeeID,
		OTPExpiresAt: pending.ExpiresAt,
		Message:      msgOTPResent,
	})
}
