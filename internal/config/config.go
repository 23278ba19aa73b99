package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Драйверы хранилища состояния
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var otpPattern = regexp.MustCompile(`^\d{4}$`)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Booking       BookingConfig       `toml:"booking"`
	Auth          AuthConfig          `toml:"auth"`
	CORS          CORSConfig          `toml:"cors"`
	Notifications NotificationsConfig `toml:"notifications"`
	Users         []UserConfig        `toml:"users"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig где хранится JSON-блоб состояния
type StorageConfig struct {
	Driver   string         `toml:"driver"`
	Key      string         `toml:"key"`
	File     FileConfig     `toml:"file"`
	Redis    RedisConfig    `toml:"redis"`
	Postgres PostgresConfig `toml:"postgres"`
}

type FileConfig struct {
	Dir string `toml:"dir"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Timeout  int    `toml:"timeout"` // секунды
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Table           string `toml:"table"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BookingConfig политика бронирования и фоновые задачи
type BookingConfig struct {
	Timezone            string  `toml:"timezone"`
	DayStart            string  `toml:"day_start"`
	LastSlotStart       string  `toml:"last_slot_start"`
	IntervalMinutes     int     `toml:"interval_minutes"`
	AdvanceBookingDays  int     `toml:"advance_booking_days"`
	SlotsPerSection     int     `toml:"slots_per_section"`
	AvailabilityRatio   float64 `toml:"availability_ratio"`
	Seed                int64   `toml:"seed"` // 0 - случайный
	ReminderLeadMinutes int     `toml:"reminder_lead_minutes"`
	CompletionSchedule  string  `toml:"completion_schedule"`
	ReminderSchedule    string  `toml:"reminder_schedule"`
}

// Policy собирает политику бронирования из конфигурации
func (c BookingConfig) Policy() (domain.BookingPolicy, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return domain.BookingPolicy{}, fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return domain.BookingPolicy{
		DayStart:           types.TimeString(c.DayStart),
		LastSlotStart:      types.TimeString(c.LastSlotStart),
		IntervalMinutes:    c.IntervalMinutes,
		AdvanceBookingDays: c.AdvanceBookingDays,
		Location:           loc,
	}, nil
}

// AuthConfig mock-аутентификация и сессионные токены
type AuthConfig struct {
	MockOTP         string `toml:"mock_otp"`
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTL        int    `toml:"token_ttl"`         // минуты
	PendingTTL      int    `toml:"pending_ttl"`       // минуты на ввод OTP
	LoginRateLimit  int    `toml:"login_rate_limit"`  // запросов
	LoginRateWindow int    `toml:"login_rate_window"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type NotificationsConfig struct {
	SendGrid SendGridConfig `toml:"sendgrid"`
	Twilio   TwilioConfig   `toml:"twilio"`
}

type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// Enabled true, если заданы ключ и отправитель
func (c SendGridConfig) Enabled() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// UserConfig запись mock-таблицы сотрудников
type UserConfig struct {
	EmployeeID string `toml:"employee_id"`
	Name       string `toml:"name"`
	Email      string `toml:"email"`
	Phone      string `toml:"phone"`
}

// DomainUsers таблица сотрудников; если в конфиге пусто, используется встроенная
func (c *Config) DomainUsers() []domain.User {
	if len(c.Users) == 0 {
		return domain.DefaultUsers()
	}
	users := make([]domain.User, 0, len(c.Users))
	for _, u := range c.Users {
		users = append(users, domain.User{
			EmployeeID: u.EmployeeID,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
		})
	}
	return users
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Storage: StorageConfig{
			Driver: StorageFile,
			Key:    domain.StateKey,
			File:   FileConfig{Dir: "data"},
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Timeout: 3,
			},
			Postgres: PostgresConfig{
				Host:            "localhost",
				Port:            5432,
				User:            "postgres",
				DBName:          "parking",
				SSLMode:         "disable",
				Table:           "app_state",
				MaxOpenConns:    5,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
		},
		Booking: BookingConfig{
			Timezone:            domain.DefaultTimezone,
			DayStart:            domain.DefaultDayStart,
			LastSlotStart:       domain.DefaultLastSlotStart,
			IntervalMinutes:     domain.DefaultIntervalMinutes,
			AdvanceBookingDays:  domain.DefaultAdvanceBookingDays,
			SlotsPerSection:     domain.DefaultSlotsPerSection,
			AvailabilityRatio:   domain.DefaultAvailabilityRatio,
			ReminderLeadMinutes: domain.DefaultReminderLead,
			CompletionSchedule:  "@every 1m",
			ReminderSchedule:    "@every 1m",
		},
		Auth: AuthConfig{
			MockOTP:         "1234",
			JWTSecret:       "parking-dev-secret",
			TokenTTL:        8 * 60,
			PendingTTL:      5,
			LoginRateLimit:  10,
			LoginRateWindow: 60,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load читает .env (если есть), TOML файл и переменные окружения, затем валидирует результат
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	overrides := []struct {
		name   string
		target *string
	}{
		{"PARKING_STORAGE_DRIVER", &cfg.Storage.Driver},
		{"PARKING_JWT_SECRET", &cfg.Auth.JWTSecret},
		{"PARKING_MOCK_OTP", &cfg.Auth.MockOTP},
		{"REDIS_ADDR", &cfg.Storage.Redis.Addr},
		{"REDIS_PASSWORD", &cfg.Storage.Redis.Password},
		{"DB_PASSWORD", &cfg.Storage.Postgres.Password},
		{"SENDGRID_API_KEY", &cfg.Notifications.SendGrid.APIKey},
		{"TWILIO_ACCOUNT_SID", &cfg.Notifications.Twilio.AccountSID},
		{"TWILIO_AUTH_TOKEN", &cfg.Notifications.Twilio.AuthToken},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.name); ok && v != "" {
			*o.target = v
		}
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageFile, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("%w: storage.key is empty", ErrInvalidConfig)
	}

	b := c.Booking
	if _, err := b.Policy(); err != nil {
		return err
	}
	dayStart := types.TimeString(b.DayStart)
	lastSlot := types.TimeString(b.LastSlotStart)
	if dayStart.Validate() != nil || lastSlot.Validate() != nil {
		return fmt.Errorf("%w: booking.day_start and booking.last_slot_start must be HH:MM", ErrInvalidConfig)
	}
	if lastSlot.IsBefore(dayStart) {
		return fmt.Errorf("%w: booking.last_slot_start is before booking.day_start", ErrInvalidConfig)
	}
	if b.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: booking.interval_minutes must be positive", ErrInvalidConfig)
	}
	if b.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: booking.advance_booking_days must not be negative", ErrInvalidConfig)
	}
	if b.SlotsPerSection <= 0 || b.SlotsPerSection > 99 {
		return fmt.Errorf("%w: booking.slots_per_section must be in 1..99", ErrInvalidConfig)
	}
	if b.AvailabilityRatio < 0 || b.AvailabilityRatio > 1 {
		return fmt.Errorf("%w: booking.availability_ratio must be in [0, 1]", ErrInvalidConfig)
	}
	if b.ReminderLeadMinutes <= 0 {
		return fmt.Errorf("%w: booking.reminder_lead_minutes must be positive", ErrInvalidConfig)
	}

	if !otpPattern.MatchString(c.Auth.MockOTP) {
		return fmt.Errorf("%w: auth.mock_otp must be %d digits", ErrInvalidConfig, domain.OTPLength)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty", ErrInvalidConfig)
	}
	if c.Auth.TokenTTL <= 0 || c.Auth.PendingTTL <= 0 {
		return fmt.Errorf("%w: auth ttl values must be positive", ErrInvalidConfig)
	}

	for i, u := range c.Users {
		if len(u.EmployeeID) < domain.MinEmployeeIDLength || u.Name == "" {
			return fmt.Errorf("%w: users[%d] needs employee_id and name", ErrInvalidConfig, i)
		}
	}

	return nil
}
