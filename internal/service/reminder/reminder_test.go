package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestText(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{name: "passed", start: now.Add(-time.Minute), want: "Your booking time has passed"},
		{name: "passed by seconds", start: now.Add(-30 * time.Second), want: "Your booking time has passed"},
		{name: "now", start: now, want: "Your booking starts in 0 minutes"},
		{name: "one minute", start: now.Add(time.Minute), want: "Your booking starts in 1 minutes"},
		{name: "floor minutes", start: now.Add(90 * time.Second), want: "Your booking starts in 1 minutes"},
		{name: "59 minutes", start: now.Add(59 * time.Minute), want: "Your booking starts in 59 minutes"},
		{name: "60 minutes", start: now.Add(60 * time.Minute), want: "Your booking starts in 1 hour"},
		{name: "119 minutes", start: now.Add(119 * time.Minute), want: "Your booking starts in 1 hour"},
		{name: "two hours", start: now.Add(2 * time.Hour), want: "Your booking starts in 2 hours"},
		{name: "1439 minutes", start: now.Add(1439 * time.Minute), want: "Your booking starts in 23 hours"},
		{name: "1440 minutes", start: now.Add(1440 * time.Minute), want: "Your booking is in 1 day"},
		{name: "two days", start: now.Add(48 * time.Hour), want: "Your booking is in 2 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.start, now))
		})
	}
}

func TestBookingText(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	b := &domain.Booking{BookingDate: "2025-10-15", StartTime: "09:30"}
	assert.Equal(t, "Your booking starts in 30 minutes", BookingText(b, time.UTC, now))

	broken := &domain.Booking{BookingDate: "15.10.2025", StartTime: "09:30"}
	assert.Empty(t, BookingText(broken, time.UTC, now))
}

func TestNext(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

	past := &domain.Booking{ID: "past", EmployeeID: "EMP001", BookingDate: "2025-10-15", StartTime: "08:00", Status: domain.StatusActive}
	later := &domain.Booking{ID: "later", EmployeeID: "EMP001", BookingDate: "2025-10-16", StartTime: "08:00", Status: domain.StatusActive}
	soon := &domain.Booking{ID: "soon", EmployeeID: "EMP001", BookingDate: "2025-10-15", StartTime: "10:00", Status: domain.StatusActive}
	cancelled := &domain.Booking{ID: "cancelled", EmployeeID: "EMP001", BookingDate: "2025-10-15", StartTime: "09:30", Status: domain.StatusCancelled}
	other := &domain.Booking{ID: "other", EmployeeID: "EMP002", BookingDate: "2025-10-15", StartTime: "09:30", Status: domain.StatusActive}

	next := Next([]*domain.Booking{past, later, soon, cancelled, other}, "EMP001", now, time.UTC)
	require.NotNil(t, next)
	assert.Equal(t, "soon", next.ID)

	assert.Nil(t, Next([]*domain.Booking{past, cancelled}, "EMP001", now, time.UTC))
	assert.Nil(t, Next(nil, "EMP003", now, time.UTC))
}

func TestMessage(t *testing.T) {
	b := &domain.Booking{SlotID: "US-P07", StartTime: "10:30"}
	assert.Equal(t, "Your booking for US-P07 starts at 10:30.", Message(b))
}

func TestGreeting(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
	}

	assert.Equal(t, "Good Morning", Greeting(at(6, 0)))
	assert.Equal(t, "Good Morning", Greeting(at(11, 59)))
	assert.Equal(t, "Good Afternoon", Greeting(at(12, 0)))
	assert.Equal(t, "Good Afternoon", Greeting(at(16, 59)))
	assert.Equal(t, "Good Evening", Greeting(at(17, 0)))
	assert.Equal(t, "Good Evening", Greeting(at(23, 0)))
}
