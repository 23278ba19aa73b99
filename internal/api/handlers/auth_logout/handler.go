package auth_logout

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
)

const msgUnauthorized = "authorization required"

type AuthService interface {
	Logout(ctx context.Context, employeeID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), employeeID); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: employee_id=%s, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Employee logged out: employee_id=%s", employeeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
