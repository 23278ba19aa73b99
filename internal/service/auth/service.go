package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	usersRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
	"github.com/m04kA/SMC-ParkingService/internal/service/reminder"
	"github.com/m04kA/SMC-ParkingService/pkg/validation"
)

var (
	loginMessages = map[string]string{
		"employeeId.min": fmt.Sprintf("Employee ID must be at least %d characters", domain.MinEmployeeIDLength),
		"password.min":   fmt.Sprintf("Password must be at least %d characters", domain.MinPasswordLength),
	}
	otpMessages = map[string]string{
		"otp.len":    fmt.Sprintf("OTP must be exactly %d digits", domain.OTPLength),
		"otp.number": "OTP must contain only numeric digits",
	}
)

// Config параметры mock-аутентификации
type Config struct {
	MockOTP    string
	JWTSecret  string
	TokenTTL   time.Duration
	PendingTTL time.Duration
	Location   *time.Location // для приветствия
}

// Service вход по табельному номеру и паролю с подтверждением OTP
// Пароль не проверяется: достаточно, чтобы сотрудник был в таблице
type Service struct {
	users        UserRepository
	state        StateRepository
	cfg          Config
	timeProvider TimeProvider
	logger       Logger

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewService создает новый экземпляр сервиса
func NewService(users UserRepository, state StateRepository, cfg Config, logger Logger) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		users:        users,
		state:        state,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		pending:      make(map[string]time.Time),
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет форму входа и создает ожидание OTP
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.PendingLogin, error) {
	if fieldErrs := validation.Struct(req, loginMessages); fieldErrs != nil {
		s.logger.Warn("Login: validation failed: %v", fieldErrs)
		return nil, fmt.Errorf("%w: %w", ErrValidation, fieldErrs)
	}

	if _, err := s.users.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown employee id=%s", req.EmployeeID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: Login - get user: %v", ErrInternal, err)
	}

	expiresAt := s.timeProvider.Now().Add(s.cfg.PendingTTL)

	s.mu.Lock()
	s.pending[req.EmployeeID] = expiresAt
	s.mu.Unlock()

	s.logger.Info("Login: employee id=%s awaiting otp until %s", req.EmployeeID, expiresAt.Format(time.RFC3339))
	return &models.PendingLogin{EmployeeID: req.EmployeeID, ExpiresAt: expiresAt}, nil
}

// ResendOTP продлевает ожидание кода; mock-код при этом не меняется
func (s *Service) ResendOTP(_ context.Context, employeeID string) (*models.PendingLogin, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.pending[employeeID]
	if !ok || now.After(expiresAt) {
		delete(s.pending, employeeID)
		return nil, ErrNoPendingLogin
	}

	expiresAt = now.Add(s.cfg.PendingTTL)
	s.pending[employeeID] = expiresAt
	s.logger.Info("ResendOTP: employee id=%s, expires at %s", employeeID, expiresAt.Format(time.RFC3339))

	return &models.PendingLogin{EmployeeID: employeeID, ExpiresAt: expiresAt}, nil
}

// VerifyOTP проверяет код, сохраняет пользователя в состоянии и выдает токен сессии
func (s *Service) VerifyOTP(ctx context.Context, req models.OTPRequest) (*models.Session, error) {
	if fieldErrs := validation.Struct(req, otpMessages); fieldErrs != nil {
		s.logger.Warn("VerifyOTP: validation failed: %v", fieldErrs)
		return nil, fmt.Errorf("%w: %w", ErrValidation, fieldErrs)
	}

	now := s.timeProvider.Now()
	if !s.hasPending(req.EmployeeID, now) {
		s.logger.Warn("VerifyOTP: no pending login for employee id=%s", req.EmployeeID)
		return nil, ErrNoPendingLogin
	}

	if req.OTP != s.cfg.MockOTP {
		s.logger.Warn("VerifyOTP: wrong otp for employee id=%s", req.EmployeeID)
		return nil, ErrInvalidOTP
	}

	user, err := s.users.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("VerifyOTP: failed to get user id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: VerifyOTP - get user: %v", ErrInternal, err)
	}

	err = s.state.Do(ctx, func(state *domain.AppState) error {
		u := *user
		state.User = &u
		state.IsAuthenticated = true
		return nil
	})
	if err != nil {
		s.logger.Error("VerifyOTP: failed to save state: %v", err)
		return nil, fmt.Errorf("%w: VerifyOTP - save state: %v", ErrInternal, err)
	}

	s.mu.Lock()
	delete(s.pending, req.EmployeeID)
	s.mu.Unlock()

	token, expiresAt, err := s.issueToken(user.EmployeeID, now)
	if err != nil {
		s.logger.Error("VerifyOTP: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: VerifyOTP - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("VerifyOTP: employee id=%s authenticated", user.EmployeeID)
	return &models.Session{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

// Logout сбрасывает пользователя и признак входа в состоянии
func (s *Service) Logout(ctx context.Context, employeeID string) error {
	s.mu.Lock()
	delete(s.pending, employeeID)
	s.mu.Unlock()

	err := s.state.Do(ctx, func(state *domain.AppState) error {
		state.User = nil
		state.IsAuthenticated = false
		return nil
	})
	if err != nil {
		s.logger.Error("Logout: failed to save state: %v", err)
		return fmt.Errorf("%w: Logout - save state: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: employee id=%s", employeeID)
	return nil
}

// Session восстанавливает сохраненного пользователя, если вход был подтвержден
func (s *Service) Session(ctx context.Context) *models.SessionInfo {
	state := s.state.Load(ctx)
	info := &models.SessionInfo{
		Greeting: reminder.Greeting(s.timeProvider.Now().In(s.cfg.Location)),
	}
	if state.User != nil && state.IsAuthenticated {
		info.User = state.User
		info.IsAuthenticated = true
	}
	return info
}

// ParseToken проверяет подпись и срок токена, возвращает табельный номер
// Токен действителен, только пока его владелец остается вошедшим в состоянии
func (s *Service) ParseToken(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	state := s.state.Load(ctx)
	if !state.IsAuthenticated || state.User == nil || state.User.EmployeeID != claims.Subject {
		return "", fmt.Errorf("%w: session for %s is closed", ErrInvalidToken, claims.Subject)
	}
	return claims.Subject, nil
}

func (s *Service) issueToken(employeeID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   employeeID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *Service) hasPending(employeeID string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.pending[employeeID]
	if !ok {
		return false
	}
	if now.After(expiresAt) {
		delete(s.pending, employeeID)
		return false
	}
	return true
}
