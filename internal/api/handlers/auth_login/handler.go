package auth_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/auth"
	"github.com/m04kA/SMC-ParkingService/pkg/validation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please correct the highlighted fields"
	msgInvalidCredentials = "Invalid Employee ID or Password"
	msgOTPSent            = "OTP sent to your registered mobile number"
)

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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	pending, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /auth/login - Validation failed: %v", fieldErrs)
			handlers.RespondValidationError(w, msgValidationFailed, fieldErrs)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: employee_id=%s", req.EmployeeID)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - OTP requested: employee_id=%s", pending.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		EmployeeID:   pending.EmployeeID,
		OTPExpiresAt: pending.ExpiresAt,
		Message:      msgOTPSent,
	})
}
