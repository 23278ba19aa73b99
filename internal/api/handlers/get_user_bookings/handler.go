package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

const (
	msgMissingEmployee = "authorization required"
	msgForbidden       = "access denied"
	msgInvalidStatus   = "invalid booking status"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{employeeId}/bookings
// Сотрудник видит только свою историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	authID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingEmployee)
		return
	}
	if authID != employeeID {
		h.logger.Warn("GET /users/{employeeId}/bookings - Access denied: employee_id=%s, requested=%s", authID, employeeID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		EmployeeID: employeeID,
		Status:     statusPtr,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/{employeeId}/bookings - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /users/{employeeId}/bookings - Failed to get bookings: employee_id=%s, error=%v",
			employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{employeeId}/bookings - Bookings retrieved successfully: employee_id=%s, count=%d",
		employeeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
