package notifier

import "errors"

var (
	// ErrNoRecipient возвращается, когда у сотрудника нет контакта для канала
	ErrNoRecipient = errors.New("notifier: recipient has no contact for channel")

	// ErrDelivery возвращается, когда провайдер не принял сообщение
	ErrDelivery = errors.New("notifier: delivery failed")
)
