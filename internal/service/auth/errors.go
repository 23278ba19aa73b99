package auth

import "errors"

var (
	// ErrValidation возвращается, когда поля формы не прошли проверку
	ErrValidation = errors.New("auth.service: validation failed")

	// ErrInvalidCredentials возвращается для неизвестного табельного номера
	ErrInvalidCredentials = errors.New("auth.service: invalid employee id or password")

	// ErrInvalidOTP возвращается, когда код не совпал
	ErrInvalidOTP = errors.New("auth.service: invalid otp")

	// ErrNoPendingLogin возвращается, когда OTP вводится без входа по паролю или ожидание истекло
	ErrNoPendingLogin = errors.New("auth.service: no pending login for employee")

	// ErrInvalidToken возвращается для некорректного или просроченного токена
	ErrInvalidToken = errors.New("auth.service: invalid session token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
