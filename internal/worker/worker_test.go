package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	usersRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type memoryState struct {
	state *domain.AppState
}

func (m *memoryState) Load(context.Context) *domain.AppState { return m.state }

type recordingNotifier struct {
	err      error
	messages []string
}

func (n *recordingNotifier) Channel() string { return "test" }

func (n *recordingNotifier) Notify(_ context.Context, user domain.User, title, message string) error {
	n.messages = append(n.messages, user.EmployeeID+"|"+title+"|"+message)
	return n.err
}

type reminderMetrics struct {
	ok, failed int
}

func (m *reminderMetrics) ReminderSent(_ string, err error) {
	if err != nil {
		m.failed++
		return
	}
	m.ok++
}

type countingCompleter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingCompleter) CompleteFinished(context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return 1, c.err
}

func (c *countingCompleter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func activeBooking(id, employeeID, start string) domain.Booking {
	return domain.Booking{
		ID:          id,
		SlotID:      "US-P01",
		EmployeeID:  employeeID,
		BookingDate: "2025-10-15",
		StartTime:   types.TimeString(start),
		EndTime:     "23:00",
		Status:      domain.StatusActive,
	}
}

func newReminderJob(state *domain.AppState, n Notifier, metrics Metrics, clock *fakeClock) *ReminderJob {
	return NewReminderJob(
		&memoryState{state: state},
		usersRepo.NewRepository(domain.DefaultUsers()),
		n,
		metrics,
		time.UTC,
		2*time.Minute,
		logger.NewNop(),
	).WithTimeProvider(clock)
}

func TestReminderJob_SendsOnceWithinLead(t *testing.T) {
	ctx := context.Background()
	state := domain.NewAppState()
	state.ActiveBookings = []domain.Booking{
		activeBooking("b-1", "EMP001", "10:00"),
		activeBooking("b-2", "EMP002", "10:30"),
	}
	n := &recordingNotifier{}
	metrics := &reminderMetrics{}
	clock := &fakeClock{now: time.Date(2025, 10, 15, 9, 57, 0, 0, time.UTC)}
	job := newReminderJob(state, n, metrics, clock)

	// За три минуты до начала напоминание еще рано
	job.Run(ctx)
	assert.Empty(t, n.messages)

	clock.now = clock.now.Add(time.Minute)
	job.Run(ctx)
	require.Len(t, n.messages, 1)
	assert.Equal(t, "EMP001|Upcoming Parking Reminder|Your booking for US-P01 starts at 10:00.", n.messages[0])

	clock.now = clock.now.Add(time.Minute)
	job.Run(ctx)
	assert.Len(t, n.messages, 1)
	assert.Equal(t, 1, metrics.ok)
}

func TestReminderJob_SkipsInactiveAndStarted(t *testing.T) {
	state := domain.NewAppState()
	cancelled := activeBooking("b-1", "EMP001", "10:00")
	cancelled.Status = domain.StatusCancelled
	state.ActiveBookings = []domain.Booking{
		cancelled,
		activeBooking("b-2", "EMP002", "09:30"),
	}
	n := &recordingNotifier{}
	job := newReminderJob(state, n, nil, &fakeClock{now: time.Date(2025, 10, 15, 9, 59, 0, 0, time.UTC)})

	job.Run(context.Background())
	assert.Empty(t, n.messages)
}

func TestReminderJob_FailureIsCountedOnce(t *testing.T) {
	state := domain.NewAppState()
	state.ActiveBookings = []domain.Booking{
		activeBooking("b-1", "EMP001", "10:00"),
		activeBooking("b-2", "UNKNOWN", "10:00"),
	}
	n := &recordingNotifier{err: errors.New("smtp down")}
	metrics := &reminderMetrics{}
	job := newReminderJob(state, n, metrics, &fakeClock{now: time.Date(2025, 10, 15, 9, 59, 0, 0, time.UTC)})

	job.Run(context.Background())
	job.Run(context.Background())

	assert.Len(t, n.messages, 1)
	assert.Equal(t, 1, metrics.failed)
}

func TestCompletionJob(t *testing.T) {
	c := &countingCompleter{}
	NewCompletionJob(c, logger.NewNop()).Run(context.Background())
	assert.Equal(t, 1, c.Calls())

	c.err = errors.New("store down")
	NewCompletionJob(c, logger.NewNop()).Run(context.Background())
	assert.Equal(t, 2, c.Calls())
}

func TestScheduler_RunsJobsAndStops(t *testing.T) {
	c := &countingCompleter{}
	s := NewScheduler(logger.NewNop())
	require.NoError(t, s.Add("complete", "@every 1s", NewCompletionJob(c, logger.NewNop())))

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return c.Calls() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()

	// Повторная остановка безопасна
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := NewScheduler(logger.NewNop())
	err := s.Add("broken", "every minute", NewCompletionJob(&countingCompleter{}, logger.NewNop()))
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}
