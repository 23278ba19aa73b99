package auth_otp

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
	msgInvalidOTP         = "Invalid OTP"
	msgNoPendingLogin     = "OTP expired, please log in again"
	msgInvalidCredentials = "Invalid Employee ID or Password"
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

// Handle POST /api/v1/auth/otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.VerifyOTP(r.Context(), req.ToServiceRequest())
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /auth/otp - Validation failed: %v", fieldErrs)
			handlers.RespondValidationError(w, msgValidationFailed, fieldErrs)

		case errors.Is(err, auth.ErrInvalidOTP):
			h.logger.Warn("POST /auth/otp - Invalid OTP: employee_id=%s", req.EmployeeID)
			handlers.RespondUnauthorized(w, msgInvalidOTP)

		case errors.Is(err, auth.ErrNoPendingLogin):
			h.logger.Warn("POST /auth/otp - No pending login: employee_id=%s", req.EmployeeID)
			handlers.RespondUnauthorized(w, msgNoPendingLogin)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/otp - Unknown employee: employee_id=%s", req.EmployeeID)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/otp - Failed to verify OTP: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp - Employee authenticated: employee_id=%s", session.User.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceSession(session))
}
