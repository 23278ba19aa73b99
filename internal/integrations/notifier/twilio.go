package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ChannelSMS канал SMS через Twilio
const ChannelSMS = "sms"

// TwilioConfig учетные данные Twilio
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// TwilioNotifier отправляет уведомления по SMS
type TwilioNotifier struct {
	api        MessageCreator
	fromNumber string
	logger     Logger
}

// NewTwilioNotifier создает канал SMS с REST клиентом Twilio
func NewTwilioNotifier(cfg TwilioConfig, logger Logger) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})
	return NewTwilioNotifierWithAPI(client.Api, cfg.FromNumber, logger)
}

// NewTwilioNotifierWithAPI создает канал SMS с произвольной реализацией API
func NewTwilioNotifierWithAPI(api MessageCreator, fromNumber string, logger Logger) *TwilioNotifier {
	return &TwilioNotifier{api: api, fromNumber: fromNumber, logger: logger}
}

func (n *TwilioNotifier) Channel() string { return ChannelSMS }

// Notify отправляет SMS, если у сотрудника указан телефон
func (n *TwilioNotifier) Notify(_ context.Context, user domain.User, title, message string) error {
	if user.Phone == "" {
		return fmt.Errorf("%w: employee=%s has no phone", ErrNoRecipient, user.EmployeeID)
	}
	if !strings.HasPrefix(user.Phone, "+") {
		n.logger.Warn("Twilio: phone of employee=%s is not in E.164 format", user.EmployeeID)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(n.fromNumber)
	params.SetBody(title + ": " + message)

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		n.logger.Error("Twilio: failed to send sms to employee=%s: %v", user.EmployeeID, err)
		return fmt.Errorf("%w: twilio: %v", ErrDelivery, err)
	}

	if resp != nil && resp.Sid != nil {
		n.logger.Info("Twilio: sms sent to employee=%s, sid=%s", user.EmployeeID, *resp.Sid)
	}
	return nil
}
