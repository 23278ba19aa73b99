package notifier

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ChannelLog канал записи уведомлений в лог
const ChannelLog = "log"

// LogNotifier пишет уведомления в лог приложения
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier создает канал записи в лог
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Channel() string { return ChannelLog }

func (n *LogNotifier) Notify(_ context.Context, user domain.User, title, message string) error {
	n.logger.Info("Notify: employee=%s, %s: %s", user.EmployeeID, title, message)
	return nil
}
