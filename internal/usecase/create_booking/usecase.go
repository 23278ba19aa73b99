package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	usersRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/service/reminder"
)

// UseCase use case для создания бронирования
type UseCase struct {
	state        StateRepository
	users        UserRepository
	checker      AvailabilityChecker
	metrics      Metrics
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	state StateRepository,
	users UserRepository,
	checker AvailabilityChecker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		state:        state,
		users:        users,
		checker:      checker,
		metrics:      metrics,
		newID:        uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithIDGenerator подменяет генератор идентификаторов
func (uc *UseCase) WithIDGenerator(gen IDGenerator) *UseCase {
	uc.newID = gen
	return uc
}

// Execute выполняет use case создания бронирования
// Проверки и запись выполняются в одном цикле чтение-изменение-запись состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: employee=%s, slot=%s, date=%s, time=%s-%s",
		req.EmployeeID, req.SlotID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем сотрудника
	if _, err := uc.users.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: employee=%s not found", req.EmployeeID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Сетка времени
	if err := validateTimes(uc.checker, req); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var created domain.Booking

	err := uc.state.Do(ctx, func(state *domain.AppState) error {
		// 4. Место существует и свободно
		slot := state.FindSlot(req.SlotID)
		if slot == nil {
			return ErrSlotNotFound
		}
		if !slot.IsAvailable() {
			return ErrSlotNotAvailable
		}

		// 5. Дата в окне бронирования
		if !uc.checker.IsDateSelectable(req.Date, now) {
			return ErrDateOutOfRange
		}

		// 6. Диапазон не в прошлом и не пересекается с активными бронированиями
		if !uc.checker.IsTimeRangeAvailable(req.Date, req.StartTime, req.EndTime, state.BookingPointers(), req.SlotID, now) {
			return ErrTimeRangeNotAvailable
		}

		// 7. Создаем бронирование и занимаем место
		created = domain.Booking{
			ID:          uc.newID(),
			SlotID:      slot.ID,
			EmployeeID:  req.EmployeeID,
			BookedAt:    now,
			Section:     slot.Section,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusActive,
		}
		slot.MarkBooked(&created)
		state.ActiveBookings = append(state.ActiveBookings, created)
		return nil
	})
	if err != nil {
		if isUseCaseError(err) {
			uc.logger.Warn("CreateBooking: employee=%s, slot=%s rejected: %v", req.EmployeeID, req.SlotID, err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed to save booking for employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingEvent(string(domain.StatusActive), 1)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for employee=%s, slot=%s", created.ID, created.EmployeeID, created.SlotID)

	return &Response{
		ID:           created.ID,
		SlotID:       created.SlotID,
		EmployeeID:   created.EmployeeID,
		Section:      string(created.Section),
		BookedAt:     created.BookedAt,
		BookingDate:  created.BookingDate,
		StartTime:    created.StartTime,
		EndTime:      created.EndTime,
		Status:       string(created.Status),
		ReminderText: reminder.BookingText(&created, uc.checker.Policy().Location, now),
	}, nil
}

func isUseCaseError(err error) bool {
	return errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrDateOutOfRange) ||
		errors.Is(err, ErrTimeRangeNotAvailable)
}
