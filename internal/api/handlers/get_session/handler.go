package get_session

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

type AuthService interface {
	Session(ctx context.Context) *models.SessionInfo
}

type Logger interface {
	Info(format string, v ...interface{})
}

// SessionResponse HTTP response model
type SessionResponse struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Greeting        string       `json:"greeting"`
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

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info := h.service.Session(r.Context())

	h.logger.Info("GET /session - authenticated=%t", info.IsAuthenticated)
	handlers.RespondJSON(w, http.StatusOK, SessionResponse{
		User:            info.User,
		IsAuthenticated: info.IsAuthenticated,
		Greeting:        info.Greeting,
	})
}
