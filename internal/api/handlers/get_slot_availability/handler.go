package get_slot_availability

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getSlotAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/get_slot_availability"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

const (
	msgInvalidInput   = "date must be YYYY-MM-DD and startTime HH:MM"
	msgDateOutOfRange = "bookings are available for today and the next two days only"
	msgSlotNotFound   = "parking slot not found"
)

type GetSlotAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getSlotAvailability.Request) (*getSlotAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SlotID         string            `json:"slotId"`
	Date           string            `json:"date"`
	SlotStatus     string            `json:"slotStatus"`
	TimeSlots      []domain.TimeSlot `json:"timeSlots"`
	StartTimes     []string          `json:"startTimes"`
	EndTimes       []string          `json:"endTimes"`
	AvailableDates []string          `json:"availableDates"`
}

func FromUseCaseResponse(resp *getSlotAvailability.Response) AvailabilityResponse {
	return AvailabilityResponse{
		SlotID:         resp.SlotID,
		Date:           resp.Date.String(),
		SlotStatus:     string(resp.SlotStatus),
		TimeSlots:      resp.TimeSlots,
		StartTimes:     timeStrings(resp.StartTimes),
		EndTimes:       timeStrings(resp.EndTimes),
		AvailableDates: dateStrings(resp.AvailableDates),
	}
}

type Handler struct {
	useCase GetSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/availability?date=YYYY-MM-DD[&startTime=HH:MM]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	query := r.URL.Query()

	req := &getSlotAvailability.Request{
		SlotID: slotID,
		Date:   types.DateString(query.Get("date")),
	}
	if start := query.Get("startTime"); start != "" {
		t := types.TimeString(start)
		req.StartTime = &t
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /slots/{slotId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getSlotAvailability.ErrDateOutOfRange):
			h.logger.Warn("GET /slots/{slotId}/availability - Date out of range: %s", req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, getSlotAvailability.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{slotId}/availability - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /slots/{slotId}/availability - Failed: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func timeStrings(in []types.TimeString) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = t.String()
	}
	return out
}

func dateStrings(in []types.DateString) []string {
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = d.String()
	}
	return out
}
