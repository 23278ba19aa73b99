package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, domain.StateKey, cfg.Storage.Key)
	assert.Equal(t, "1234", cfg.Auth.MockOTP)
	assert.Equal(t, domain.DefaultSlotsPerSection, cfg.Booking.SlotsPerSection)

	policy, err := cfg.Booking.Policy()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", policy.Location.String())
	assert.Equal(t, 30, policy.IntervalMinutes)
	assert.Equal(t, 2, policy.AdvanceBookingDays)

	assert.Len(t, cfg.DomainUsers(), 3)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "redis"

[storage.redis]
addr = "redis:6379"

[booking]
timezone = "UTC"
interval_minutes = 60

[[users]]
employee_id = "EMP100"
name = "Asha"
email = "asha@example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 60, cfg.Booking.IntervalMinutes)
	assert.Equal(t, "06:00", cfg.Booking.DayStart)

	users := cfg.DomainUsers()
	require.Len(t, users, 1)
	assert.Equal(t, domain.User{EmployeeID: "EMP100", Name: "Asha", Email: "asha@example.com"}, users[0])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PARKING_JWT_SECRET", "from-env")
	t.Setenv("SENDGRID_API_KEY", "SG.key")

	cfg, err := Load(writeConfig(t, `
[notifications.sendgrid]
from_email = "parking@example.com"
`))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Notifications.SendGrid.Enabled())
	assert.False(t, cfg.Notifications.Twilio.Enabled())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[server\nhttp_port = 1"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "driver", mutate: func(c *Config) { c.Storage.Driver = "sqlite" }},
		{name: "timezone", mutate: func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{name: "day start", mutate: func(c *Config) { c.Booking.DayStart = "6am" }},
		{name: "last before start", mutate: func(c *Config) { c.Booking.LastSlotStart = "05:00" }},
		{name: "interval", mutate: func(c *Config) { c.Booking.IntervalMinutes = 0 }},
		{name: "ratio", mutate: func(c *Config) { c.Booking.AvailabilityRatio = 1.5 }},
		{name: "slots per section", mutate: func(c *Config) { c.Booking.SlotsPerSection = 100 }},
		{name: "otp", mutate: func(c *Config) { c.Auth.MockOTP = "12a4" }},
		{name: "jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }},
		{name: "user", mutate: func(c *Config) { c.Users = []UserConfig{{EmployeeID: "E1", Name: "x"}} }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	dsn := Default().Storage.Postgres.DSN()
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=parking sslmode=disable", dsn)
}
