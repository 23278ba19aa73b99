package notifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ChannelEmail канал email через SendGrid
const ChannelEmail = "email"

// SendGridConfig параметры отправителя
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridNotifier отправляет уведомления письмом
type SendGridNotifier struct {
	sender MailSender
	from   *mail.Email
	logger Logger
}

// NewSendGridNotifier создает канал email с клиентом SendGrid
func NewSendGridNotifier(cfg SendGridConfig, logger Logger) *SendGridNotifier {
	return NewSendGridNotifierWithSender(&sendGridClient{client: sendgrid.NewSendClient(cfg.APIKey)}, cfg, logger)
}

// NewSendGridNotifierWithSender создает канал email с произвольным отправителем
func NewSendGridNotifierWithSender(sender MailSender, cfg SendGridConfig, logger Logger) *SendGridNotifier {
	return &SendGridNotifier{
		sender: sender,
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		logger: logger,
	}
}

func (n *SendGridNotifier) Channel() string { return ChannelEmail }

// Notify отправляет письмо, если у сотрудника указан email
func (n *SendGridNotifier) Notify(ctx context.Context, user domain.User, title, message string) error {
	if user.Email == "" {
		return fmt.Errorf("%w: employee=%s has no email", ErrNoRecipient, user.EmployeeID)
	}

	to := mail.NewEmail(user.Name, user.Email)
	email := mail.NewSingleEmail(n.from, title, to, message, "<p>"+message+"</p>")

	status, body, err := n.sender.Send(ctx, email)
	if err != nil {
		n.logger.Error("SendGrid: failed to send email to employee=%s: %v", user.EmployeeID, err)
		return fmt.Errorf("%w: sendgrid: %v", ErrDelivery, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		n.logger.Error("SendGrid: unexpected status %d for employee=%s: %s", status, user.EmployeeID, body)
		return fmt.Errorf("%w: sendgrid status %d", ErrDelivery, status)
	}

	n.logger.Info("SendGrid: email sent to employee=%s, status=%d", user.EmployeeID, status)
	return nil
}

type sendGridClient struct {
	client *sendgrid.Client
}

func (c *sendGridClient) Send(ctx context.Context, message *mail.SGMailV3) (int, string, error) {
	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, resp.Body, nil
}
