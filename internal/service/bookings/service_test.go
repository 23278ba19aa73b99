package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/kvstore"
	stateRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/state"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type countingMetrics struct {
	events map[string]int
}

func (m *countingMetrics) BookingEvent(status string, count int) {
	m.events[status] += count
}

type fixture struct {
	svc     *Service
	state   *stateRepo.Repository
	clock   *fakeClock
	metrics *countingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	state := stateRepo.NewRepository(store, domain.StateKey, nil, logger.NewNop())

	clock := &fakeClock{now: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)}
	metrics := &countingMetrics{events: map[string]int{}}
	policy := domain.BookingPolicy{
		DayStart:           "06:00",
		LastSlotStart:      "22:30",
		IntervalMinutes:    30,
		AdvanceBookingDays: 2,
		Location:           time.UTC,
	}

	svc := NewService(state, policy, metrics, logger.NewNop()).WithTimeProvider(clock)
	return &fixture{svc: svc, state: state, clock: clock, metrics: metrics}
}

// seed кладет в состояние места и бронирования; места занимаются по активным бронированиям
func (f *fixture) seed(t *testing.T, bookings ...domain.Booking) {
	t.Helper()
	require.NoError(t, f.state.Do(context.Background(), func(s *domain.AppState) error {
		for _, id := range []string{"US-P01", "US-P02", "LS-P01"} {
			s.ParkingSlots = append(s.ParkingSlots, domain.ParkingSlot{
				ID:      id,
				Section: domain.Section(id[:2]),
				Status:  domain.SlotAvailable,
			})
		}
		for i := range bookings {
			b := bookings[i]
			if b.IsActive() {
				s.FindSlot(b.SlotID).MarkBooked(&b)
			}
			s.ActiveBookings = append(s.ActiveBookings, b)
		}
		return nil
	}))
}

func booking(id, slotID, employeeID string, date, start, end string, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:          id,
		SlotID:      slotID,
		EmployeeID:  employeeID,
		Section:     domain.Section(slotID[:2]),
		BookedAt:    time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC),
		BookingDate: types.DateString(date),
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t,
		booking("b1", "US-P01", "EMP001", "2025-10-15", "10:00", "11:00", domain.StatusActive),
		booking("b2", "US-P02", "EMP002", "2025-10-15", "10:00", "11:00", domain.StatusActive),
	)

	assert.ErrorIs(t, f.svc.Cancel(ctx, "missing", "EMP001"), ErrBookingNotFound)
	assert.ErrorIs(t, f.svc.Cancel(ctx, "b2", "EMP001"), ErrAccessDenied)

	require.NoError(t, f.svc.Cancel(ctx, "b1", "EMP001"))

	state := f.state.Load(ctx)
	assert.Equal(t, domain.StatusCancelled, state.FindBooking("b1").Status)
	slot := state.FindSlot("US-P01")
	assert.True(t, slot.IsAvailable())
	assert.Nil(t, slot.BookedBy)
	assert.Nil(t, slot.BookedDate)
	assert.True(t, state.FindSlot("US-P02").IsBookedBy("EMP002"))

	assert.ErrorIs(t, f.svc.Cancel(ctx, "b1", "EMP001"), ErrCannotCancel)
	assert.Equal(t, 1, f.metrics.events["cancelled"])
}

func TestGetActiveBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t,
		booking("old", "LS-P01", "EMP001", "2025-10-14", "10:00", "11:00", domain.StatusCancelled),
		booking("b1", "US-P01", "EMP001", "2025-10-15", "11:00", "12:00", domain.StatusActive),
	)

	active, err := f.svc.GetActiveBooking(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "b1", active.Booking.ID)
	assert.Equal(t, "11:00", active.Booking.BookingTime)
	assert.Equal(t, "Your booking starts in 2 hours", active.ReminderText)

	_, err = f.svc.GetActiveBooking(ctx, "EMP002")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t, booking("b1", "US-P01", "EMP001", "2025-10-15", "11:00", "12:00", domain.StatusActive))

	resp, err := f.svc.GetByID(ctx, "b1", "EMP001")
	require.NoError(t, err)
	assert.Equal(t, "US-P01", resp.SlotID)

	_, err = f.svc.GetByID(ctx, "b1", "EMP002")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(ctx, "nope", "EMP001")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookingsAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t,
		booking("b1", "US-P01", "EMP001", "2025-10-15", "10:00", "11:00", domain.StatusActive),
		booking("b2", "LS-P01", "EMP001", "2025-10-14", "10:00", "11:00", domain.StatusCancelled),
		booking("b3", "US-P02", "EMP002", "2025-10-16", "10:00", "11:00", domain.StatusActive),
	)

	resp, err := f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{EmployeeID: "EMP001"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{EmployeeID: "EMP001", Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b2", resp.Bookings[0].ID)

	_, err = f.svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{EmployeeID: "EMP001", Status: ptr.Ptr("confirmed")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err = f.svc.List(ctx, &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)

	resp, err = f.svc.List(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("2025-10-16")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b3", resp.Bookings[0].ID)

	resp, err = f.svc.List(ctx, &models.ListBookingsRequest{SlotID: ptr.Ptr("US-P01"), Status: ptr.Ptr("active")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)

	_, err = f.svc.List(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("16/10/2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompleteFinished(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seed(t,
		booking("ended", "US-P01", "EMP001", "2025-10-15", "07:00", "08:30", domain.StatusActive),
		booking("no-end", "US-P02", "EMP002", "2025-10-15", "08:30", "", domain.StatusActive),
		booking("running", "LS-P01", "EMP003", "2025-10-15", "08:30", "10:00", domain.StatusActive),
	)

	completed, err := f.svc.CompleteFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	state := f.state.Load(ctx)
	assert.Equal(t, domain.StatusCompleted, state.FindBooking("ended").Status)
	assert.Equal(t, domain.StatusCompleted, state.FindBooking("no-end").Status)
	assert.Equal(t, domain.StatusActive, state.FindBooking("running").Status)
	assert.True(t, state.FindSlot("US-P01").IsAvailable())
	assert.True(t, state.FindSlot("US-P02").IsAvailable())
	assert.True(t, state.FindSlot("LS-P01").IsBookedBy("EMP003"))
	assert.Equal(t, 2, f.metrics.events["completed"])

	completed, err = f.svc.CompleteFinished(ctx)
	require.NoError(t, err)
	assert.Zero(t, completed)

	f.clock.now = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	completed, err = f.svc.CompleteFinished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
}
