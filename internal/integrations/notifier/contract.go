package notifier

import (
	"context"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Notifier канал доставки уведомлений сотруднику
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, user domain.User, title, message string) error
}

// MailSender отправка письма через SendGrid, возвращает HTTP статус ответа
type MailSender interface {
	Send(ctx context.Context, message *mail.SGMailV3) (int, string, error)
}

// MessageCreator создание SMS через Twilio API
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
