package get_slots

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

const msgSlotNotFound = "parking slot not found"

type SlotService interface {
	List(ctx context.Context) *models.Overview
	Get(ctx context.Context, slotID string) (*domain.ParkingSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SectionResponse места одной секции
type SectionResponse struct {
	Section string               `json:"section"`
	Slots   []domain.ParkingSlot `json:"slots"`
	Stats   domain.SlotStats     `json:"stats"`
}

// OverviewResponse HTTP response model
type OverviewResponse struct {
	Sections []SectionResponse `json:"sections"`
	Stats    domain.SlotStats  `json:"stats"`
}

func FromOverview(o *models.Overview) OverviewResponse {
	resp := OverviewResponse{
		Sections: make([]SectionResponse, 0, len(o.Sections)),
		Stats:    o.Stats,
	}
	for _, s := range o.Sections {
		resp.Sections = append(resp.Sections, SectionResponse{
			Section: string(s.Section),
			Slots:   s.Slots,
			Stats:   s.Stats,
		})
	}
	return resp
}

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	overview := h.service.List(r.Context())

	h.logger.Info("GET /slots - total=%d, available=%d", overview.Stats.TotalSpots, overview.Stats.AvailableSpots)
	handlers.RespondJSON(w, http.StatusOK, FromOverview(overview))
}

// HandleGet GET /api/v1/slots/{slotId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	slot, err := h.service.Get(r.Context(), slotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			h.logger.Warn("GET /slots/{slotId} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("GET /slots/{slotId} - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slot)
}
