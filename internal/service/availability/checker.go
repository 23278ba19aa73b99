package availability

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Checker вычисляет доступные даты и время для бронирования места
// Все методы чистые: текущее время передается явно
type Checker struct {
	policy domain.BookingPolicy
}

// NewChecker создает новый экземпляр checker
func NewChecker(policy domain.BookingPolicy) *Checker {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.IntervalMinutes <= 0 {
		policy.IntervalMinutes = domain.DefaultIntervalMinutes
	}
	return &Checker{policy: policy}
}

// Policy возвращает политику, с которой работает checker
func (c *Checker) Policy() domain.BookingPolicy {
	return c.policy
}

// Location фиксированная локация отображения
func (c *Checker) Location() *time.Location {
	return c.policy.Location
}

// TimeSlots генерирует сетку начал интервалов от DayStart до LastSlotStart включительно
func (c *Checker) TimeSlots() []types.TimeString {
	start, err := c.policy.DayStart.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	last, err := c.policy.LastSlotStart.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (last-start)/c.policy.IntervalMinutes+1)
	for m := start; m <= last; m += c.policy.IntervalMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, ts)
	}
	return slots
}

// IsOnGrid проверяет, что время совпадает с одним из слотов сетки
func (c *Checker) IsOnGrid(t types.TimeString) bool {
	for _, slot := range c.TimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// AvailableDates возвращает даты, доступные для выбора: сегодня и AdvanceBookingDays дней вперед
func (c *Checker) AvailableDates(now time.Time) []types.DateString {
	today := startOfDay(now.In(c.policy.Location))
	dates := make([]types.DateString, 0, c.policy.AdvanceBookingDays+1)
	for i := 0; i <= c.policy.AdvanceBookingDays; i++ {
		dates = append(dates, types.NewDateString(today.AddDate(0, 0, i)))
	}
	return dates
}

// IsDateSelectable проверяет, что дата не в прошлом и не дальше окна бронирования
func (c *Checker) IsDateSelectable(date types.DateString, now time.Time) bool {
	day, err := date.Time(c.policy.Location)
	if err != nil {
		return false
	}
	today := startOfDay(now.In(c.policy.Location))
	lastDay := today.AddDate(0, 0, c.policy.AdvanceBookingDays)
	return !day.Before(today) && !day.After(lastDay)
}

// IsTimeSlotAvailable проверяет один интервал [t, t+interval) места slotID в дату date
// Интервал недоступен, если он начинается раньше now
// или пересекается с активным бронированием этого места в эту же дату
func (c *Checker) IsTimeSlotAvailable(
	date types.DateString,
	t types.TimeString,
	bookings []*domain.Booking,
	slotID string,
	now time.Time,
) bool {
	startAt, err := t.OnDate(date, c.policy.Location)
	if err != nil {
		return false
	}

	// Нельзя бронировать в прошлом
	if startAt.Before(now) {
		return false
	}

	endAt := startAt.Add(time.Duration(c.policy.IntervalMinutes) * time.Minute)
	return countOverlappingBookings(startAt, endAt, date, bookings, slotID, c.policy) == 0
}

// IsTimeRangeAvailable проверяет диапазон [start, end)
// Диапазон доступен, только если доступен каждый интервал внутри него
func (c *Checker) IsTimeRangeAvailable(
	date types.DateString,
	start types.TimeString,
	end types.TimeString,
	bookings []*domain.Booking,
	slotID string,
	now time.Time,
) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}

	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	endMin, err := end.Minutes()
	if err != nil {
		return false
	}
	if startMin >= endMin {
		return false
	}

	for m := startMin; m < endMin; m += c.policy.IntervalMinutes {
		step, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return false
		}
		if !c.IsTimeSlotAvailable(date, step, bookings, slotID, now) {
			return false
		}
	}

	return true
}

// TimeSlotsFor возвращает всю сетку с признаком доступности каждого слота
func (c *Checker) TimeSlotsFor(
	date types.DateString,
	bookings []*domain.Booking,
	slotID string,
	now time.Time,
) []domain.TimeSlot {
	grid := c.TimeSlots()
	result := make([]domain.TimeSlot, len(grid))
	for i, t := range grid {
		result[i] = domain.TimeSlot{
			Time:      t,
			Available: c.IsTimeSlotAvailable(date, t, bookings, slotID, now),
		}
	}
	return result
}

// AvailableStartTimes возвращает слоты сетки, с которых можно начать бронирование
func (c *Checker) AvailableStartTimes(
	date types.DateString,
	bookings []*domain.Booking,
	slotID string,
	now time.Time,
) []types.TimeString {
	result := make([]types.TimeString, 0)
	for _, t := range c.TimeSlots() {
		if c.IsTimeSlotAvailable(date, t, bookings, slotID, now) {
			result = append(result, t)
		}
	}
	return result
}

// AvailableEndTimes возвращает слоты сетки строго после start, до которых диапазон свободен
func (c *Checker) AvailableEndTimes(
	date types.DateString,
	start types.TimeString,
	bookings []*domain.Booking,
	slotID string,
	now time.Time,
) []types.TimeString {
	result := make([]types.TimeString, 0)
	if start.IsZero() {
		return result
	}
	for _, t := range c.TimeSlots() {
		if !t.IsAfter(start) {
			continue
		}
		if c.IsTimeRangeAvailable(date, start, t, bookings, slotID, now) {
			result = append(result, t)
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
