package notifier

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/multierr"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Multi рассылает уведомление по всем каналам
// Каналы без контакта сотрудника пропускаются
type Multi struct {
	notifiers []Notifier
}

// NewMulti объединяет каналы
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Channel() string {
	channels := make([]string, 0, len(m.notifiers))
	for _, n := range m.notifiers {
		channels = append(channels, n.Channel())
	}
	return strings.Join(channels, ",")
}

// Notify возвращает объединенную ошибку всех каналов, которые не смогли доставить сообщение
func (m *Multi) Notify(ctx context.Context, user domain.User, title, message string) error {
	var result error
	for _, n := range m.notifiers {
		err := n.Notify(ctx, user, title, message)
		if err == nil || errors.Is(err, ErrNoRecipient) {
			continue
		}
		result = multierr.Append(result, err)
	}
	return result
}
