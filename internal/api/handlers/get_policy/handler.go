package get_policy

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Calendar источник правил бронирования
type Calendar interface {
	Policy() domain.BookingPolicy
	TimeSlots() []types.TimeString
	AvailableDates(now time.Time) []types.DateString
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// PolicyResponse HTTP response model
type PolicyResponse struct {
	DayStart           string   `json:"dayStart"`
	LastSlotStart      string   `json:"lastSlotStart"`
	IntervalMinutes    int      `json:"intervalMinutes"`
	AdvanceBookingDays int      `json:"advanceBookingDays"`
	Timezone           string   `json:"timezone"`
	TimeSlots          []string `json:"timeSlots"`
}

// DatesResponse HTTP response model
type DatesResponse struct {
	Today string   `json:"today"`
	Dates []string `json:"dates"`
}

type Handler struct {
	calendar     Calendar
	timeProvider TimeProvider
}

func NewHandler(calendar Calendar, timeProvider TimeProvider) *Handler {
	return &Handler{
		calendar:     calendar,
		timeProvider: timeProvider,
	}
}

// Handle GET /api/v1/policy
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	policy := h.calendar.Policy()
	grid := h.calendar.TimeSlots()

	slots := make([]string, len(grid))
	for i, t := range grid {
		slots[i] = t.String()
	}

	handlers.RespondJSON(w, http.StatusOK, PolicyResponse{
		DayStart:           policy.DayStart.String(),
		LastSlotStart:      policy.LastSlotStart.String(),
		IntervalMinutes:    policy.IntervalMinutes,
		AdvanceBookingDays: policy.AdvanceBookingDays,
		Timezone:           policy.Location.String(),
		TimeSlots:          slots,
	})
}

// HandleDates GET /api/v1/dates
func (h *Handler) HandleDates(w http.ResponseWriter, _ *http.Request) {
	dates := h.calendar.AvailableDates(h.timeProvider.Now())

	resp := DatesResponse{Dates: make([]string, len(dates))}
	for i, d := range dates {
		resp.Dates[i] = d.String()
	}
	if len(dates) > 0 {
		resp.Today = dates[0].String()
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
