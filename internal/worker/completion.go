package worker

import "context"

// CompletionJob переводит завершившиеся бронирования в статус completed
type CompletionJob struct {
	bookings BookingCompleter
	logger   Logger
}

// NewCompletionJob создает задачу завершения бронирований
func NewCompletionJob(bookings BookingCompleter, logger Logger) *CompletionJob {
	return &CompletionJob{bookings: bookings, logger: logger}
}

func (j *CompletionJob) Run(ctx context.Context) {
	count, err := j.bookings.CompleteFinished(ctx)
	if err != nil {
		j.logger.Error("CompletionJob: failed to complete bookings: %v", err)
		return
	}
	if count > 0 {
		j.logger.Info("CompletionJob: %d bookings completed", count)
	}
}
