package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler запускает задачи по cron расписанию
type Scheduler struct {
	cron   *cron.Cron
	logger Logger

	mu      sync.Mutex
	runCtx  context.Context
	cancel  context.CancelFunc
	started bool
}

// NewScheduler создает планировщик
// Задачи одного имени не запускаются параллельно
func NewScheduler(logger Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		logger: logger,
	}
}

// Add регистрирует задачу с расписанием spec (например, "@every 1m")
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx := s.context()
		if ctx.Err() != nil {
			return
		}
		job.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, name, spec, err)
	}
	s.logger.Info("Scheduler: job %s scheduled with %q", name, spec)
	return nil
}

// Start запускает планировщик, задачи получают контекст, производный от ctx
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.runCtx, s.cancel = context.WithCancel(ctx)
	s.started = true
	s.cron.Start()
	s.logger.Info("Scheduler: started with %d jobs", len(s.cron.Entries()))
}

// Stop останавливает планировщик и ждет завершения выполняемых задач
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler: stopped")
}

func (s *Scheduler) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCtx == nil {
		return context.Background()
	}
	return s.runCtx
}

// cronLogger адаптер Logger к cron.Logger
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	// cron пишет служебные сообщения о каждом запуске, они не нужны
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("Scheduler: %s: %v %v", msg, err, keysAndValues)
}
