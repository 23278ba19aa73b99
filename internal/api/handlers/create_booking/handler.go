package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

const (
	msgUnauthorized          = "authorization required"
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidInput          = "please select date, start time and end time"
	msgUserNotFound          = "employee not found"
	msgSlotNotFound          = "parking slot not found"
	msgSlotNotAvailable      = "this parking slot is already booked"
	msgDateOutOfRange        = "bookings are available for today and the next two days only"
	msgInvalidTimeSlot       = "please choose times from the available time slots"
	msgTimeRangeNotAvailable = "selected time range is not available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(employeeID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - Employee not found: employee_id=%s", employeeID)
			handlers.RespondForbidden(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrDateOutOfRange):
			h.logger.Warn("POST /bookings - Date out of range: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s-%s", req.BookingTime, req.BookingEndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTimeRangeNotAvailable):
			h.logger.Warn("POST /bookings - Time range not available: slot_id=%s, date=%s, %s-%s",
				req.SlotID, req.BookingDate, req.BookingTime, req.BookingEndTime)
			handlers.RespondConflict(w, msgTimeRangeNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: employee_id=%s, slot_id=%s, error=%v",
				employeeID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, employee_id=%s, slot_id=%s",
		result.ID, employeeID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
