package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/reminder"
)

// ReminderJob отправляет напоминание незадолго до начала бронирования
// Каждое бронирование получает не больше одного напоминания
type ReminderJob struct {
	state        StateRepository
	users        UserRepository
	notifier     Notifier
	metrics      Metrics
	location     *time.Location
	lead         time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu   sync.Mutex
	sent map[string]struct{}
}

// NewReminderJob создает задачу напоминаний
// metrics может быть nil
func NewReminderJob(
	state StateRepository,
	users UserRepository,
	notifier Notifier,
	metrics Metrics,
	location *time.Location,
	lead time.Duration,
	logger Logger,
) *ReminderJob {
	if location == nil {
		location = time.UTC
	}
	return &ReminderJob{
		state:        state,
		users:        users,
		notifier:     notifier,
		metrics:      metrics,
		location:     location,
		lead:         lead,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sent:         make(map[string]struct{}),
	}
}

// WithTimeProvider подменяет источник времени
func (j *ReminderJob) WithTimeProvider(tp TimeProvider) *ReminderJob {
	j.timeProvider = tp
	return j
}

func (j *ReminderJob) Run(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.timeProvider.Now()
	state := j.state.Load(ctx)

	active := make(map[string]struct{}, len(state.ActiveBookings))
	for _, b := range state.BookingPointers() {
		if !b.IsActive() {
			continue
		}
		active[b.ID] = struct{}{}

		if _, done := j.sent[b.ID]; done {
			continue
		}

		start, err := b.StartsAt(j.location)
		if err != nil {
			j.logger.Warn("ReminderJob: booking id=%s has invalid start: %v", b.ID, err)
			continue
		}
		until := start.Sub(now)
		if until < 0 || until > j.lead {
			continue
		}

		user, err := j.users.GetByEmployeeID(ctx, b.EmployeeID)
		if err != nil {
			j.logger.Warn("ReminderJob: employee=%s of booking id=%s not found: %v", b.EmployeeID, b.ID, err)
			j.sent[b.ID] = struct{}{}
			continue
		}

		err = j.notifier.Notify(ctx, *user, reminder.ReminderTitle, reminder.Message(b))
		if j.metrics != nil {
			j.metrics.ReminderSent(j.notifier.Channel(), err)
		}
		if err != nil {
			j.logger.Error("ReminderJob: failed to notify employee=%s about booking id=%s: %v", b.EmployeeID, b.ID, err)
		} else {
			j.logger.Info("ReminderJob: reminded employee=%s about booking id=%s", b.EmployeeID, b.ID)
		}
		j.sent[b.ID] = struct{}{}
	}

	// Забываем бронирования, которые больше не активны
	for id := range j.sent {
		if _, ok := active[id]; !ok {
			delete(j.sent, id)
		}
	}
}
