package reminder

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Тексты напоминаний
const (
	TextPassed    = "Your booking time has passed"
	ReminderTitle = "Upcoming Parking Reminder"

	minutesPerHour = 60
	minutesPerDay  = 24 * 60
)

// Text формирует текст напоминания по времени начала бронирования
// Разница считается в целых минутах с округлением вниз
func Text(start, now time.Time) string {
	diff := int(math.Floor(start.Sub(now).Minutes()))

	switch {
	case diff < 0:
		return TextPassed
	case diff < minutesPerHour:
		return fmt.Sprintf("Your booking starts in %d minutes", diff)
	case diff < minutesPerDay:
		hours := diff / minutesPerHour
		return fmt.Sprintf("Your booking starts in %d hour%s", hours, plural(hours))
	default:
		days := diff / minutesPerDay
		return fmt.Sprintf("Your booking is in %d day%s", days, plural(days))
	}
}

// BookingText текст напоминания для бронирования
// Для некорректных даты или времени возвращает пустую строку
func BookingText(b *domain.Booking, loc *time.Location, now time.Time) string {
	start, err := b.StartsAt(loc)
	if err != nil {
		return ""
	}
	return Text(start, now)
}

// Next возвращает ближайшее будущее активное бронирование сотрудника
func Next(bookings []*domain.Booking, employeeID string, now time.Time, loc *time.Location) *domain.Booking {
	var (
		next      *domain.Booking
		nextStart time.Time
	)

	for _, b := range bookings {
		if b == nil || b.EmployeeID != employeeID || !b.IsActive() {
			continue
		}
		start, err := b.StartsAt(loc)
		if err != nil || !start.After(now) {
			continue
		}
		if next == nil || start.Before(nextStart) {
			next = b
			nextStart = start
		}
	}

	return next
}

// Message текст уведомления перед началом бронирования
func Message(b *domain.Booking) string {
	return fmt.Sprintf("Your booking for %s starts at %s.", b.SlotID, b.StartTime)
}

// Greeting приветствие по часу локального времени now
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
