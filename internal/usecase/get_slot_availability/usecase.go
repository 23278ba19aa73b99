package get_slot_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// UseCase use case для получения доступного времени места на дату
type UseCase struct {
	state        StateRepository
	checker      AvailabilityChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(state StateRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		state:        state,
		checker:      checker,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotAvailability: slot=%s, date=%s", req.SlotID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата в окне бронирования
	if !uc.checker.IsDateSelectable(req.Date, now) {
		uc.logger.Warn("GetSlotAvailability: date=%s is out of booking window", req.Date)
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, req.Date)
	}

	// 3. Место существует
	state := uc.state.Load(ctx)
	slot := state.FindSlot(req.SlotID)
	if slot == nil {
		uc.logger.Warn("GetSlotAvailability: slot=%s not found", req.SlotID)
		return nil, ErrSlotNotFound
	}

	// 4. Расчет сетки
	bookings := state.BookingPointers()
	resp := &Response{
		SlotID:         slot.ID,
		Date:           req.Date,
		SlotStatus:     slot.Status,
		TimeSlots:      uc.checker.TimeSlotsFor(req.Date, bookings, slot.ID, now),
		StartTimes:     uc.checker.AvailableStartTimes(req.Date, bookings, slot.ID, now),
		EndTimes:       []types.TimeString{},
		AvailableDates: uc.checker.AvailableDates(now),
	}
	if req.StartTime != nil {
		resp.EndTimes = uc.checker.AvailableEndTimes(req.Date, *req.StartTime, bookings, slot.ID, now)
	}

	uc.logger.Info("GetSlotAvailability: slot=%s, date=%s, start times=%d", slot.ID, req.Date, len(resp.StartTimes))
	return resp, nil
}
