package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/internal/service/reminder"
)

// Service сервис для работы с бронированиями
type Service struct {
	state        StateRepository
	policy       domain.BookingPolicy
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// metrics может быть nil
func NewService(
	state StateRepository,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *Service {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &Service{
		state:        state,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Сотрудник может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, bookingID, employeeID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for employee=%s", bookingID, employeeID)

	state := s.state.Load(ctx)
	booking := state.FindBooking(bookingID)
	if booking == nil {
		s.logger.Warn("GetByID: booking id=%s not found", bookingID)
		return nil, ErrBookingNotFound
	}

	if booking.EmployeeID != employeeID {
		s.logger.Warn("GetByID: access denied for employee=%s to booking id=%s", employeeID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetActiveBooking текущее активное бронирование сотрудника с текстом напоминания
func (s *Service) GetActiveBooking(ctx context.Context, employeeID string) (*models.ActiveBookingResponse, error) {
	state := s.state.Load(ctx)

	booking := state.CurrentBooking(employeeID)
	if booking == nil {
		s.logger.Info("GetActiveBooking: employee=%s has no active booking", employeeID)
		return nil, ErrBookingNotFound
	}

	return &models.ActiveBookingResponse{
		Booking:      *models.FromDomainBooking(booking),
		ReminderText: reminder.BookingText(booking, s.policy.Location, s.timeProvider.Now()),
	}, nil
}

// GetUserBookings получает историю бронирований сотрудника
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for employee=%s, status=%v", req.EmployeeID, req.Status)

	filter, err := (&models.ListBookingsRequest{Status: req.Status}).ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status for employee=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	filter.EmployeeID = &req.EmployeeID

	bookings := s.filter(ctx, filter)
	s.logger.Info("GetUserBookings: fetched %d bookings for employee=%s", len(bookings), req.EmployeeID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает бронирования всех сотрудников с фильтрацией по статусу, дате и месту
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings := s.filter(ctx, filter)
	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает место
// Отменить можно только своё активное бронирование
func (s *Service) Cancel(ctx context.Context, bookingID, employeeID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s by employee=%s", bookingID, employeeID)

	err := s.state.Do(ctx, func(state *domain.AppState) error {
		booking := state.FindBooking(bookingID)
		if booking == nil {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}

		if booking.EmployeeID != employeeID {
			s.logger.Warn("Cancel: access denied for employee=%s to booking id=%s", employeeID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		booking.Status = domain.StatusCancelled
		releaseSlot(state, booking)
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return err
		}
		s.logger.Error("Cancel: failed to save state for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - save state: %v", ErrInternal, err)
	}

	s.observe(domain.StatusCancelled, 1)
	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// CompleteFinished переводит в completed активные бронирования, время которых истекло,
// и освобождает их места
func (s *Service) CompleteFinished(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	completed := 0

	err := s.state.Do(ctx, func(state *domain.AppState) error {
		for i := range state.ActiveBookings {
			booking := &state.ActiveBookings[i]
			if !booking.IsActive() {
				continue
			}

			endsAt, err := booking.EndsAt(s.policy.Location, s.policy.IntervalMinutes)
			if err != nil {
				s.logger.Warn("CompleteFinished: booking id=%s has invalid time: %v", booking.ID, err)
				continue
			}
			if endsAt.After(now) {
				continue
			}

			booking.Status = domain.StatusCompleted
			releaseSlot(state, booking)
			completed++
		}

		if completed == 0 {
			return errNothingChanged
		}
		return nil
	})
	if err != nil && !errors.Is(err, errNothingChanged) {
		s.logger.Error("CompleteFinished: failed to save state: %v", err)
		return 0, fmt.Errorf("%w: CompleteFinished - save state: %v", ErrInternal, err)
	}

	if completed > 0 {
		s.observe(domain.StatusCompleted, completed)
		s.logger.Info("CompleteFinished: completed %d bookings", completed)
	}
	return completed, nil
}

// Вспомогательные методы

func (s *Service) filter(ctx context.Context, filter domain.BookingsFilter) []*domain.Booking {
	state := s.state.Load(ctx)

	result := make([]*domain.Booking, 0)
	for _, b := range state.BookingPointers() {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}

func (s *Service) observe(status domain.BookingStatus, count int) {
	if s.metrics != nil {
		s.metrics.BookingEvent(string(status), count)
	}
}

// releaseSlot освобождает место, если оно занято именно этим бронированием
func releaseSlot(state *domain.AppState, booking *domain.Booking) {
	slot := state.FindSlot(booking.SlotID)
	if slot != nil && slot.HeldBy(booking) {
		slot.Release()
	}
}
