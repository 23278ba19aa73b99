package availability

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// countOverlappingBookings подсчитывает активные бронирования места slotID в дату date,
// пересекающиеся с интервалом [start, end)
//
// Пересечение есть только если интервалы действительно накладываются:
// - Интервал 10:00-10:30, бронирование 09:00-10:00 → НЕТ пересечения (граничат)
// - Интервал 10:00-10:30, бронирование 10:15-11:00 → ЕСТЬ пересечение
// - Интервал 10:00-10:30, бронирование 10:30-11:00 → НЕТ пересечения (граничат)
func countOverlappingBookings(
	start, end time.Time,
	date types.DateString,
	bookings []*domain.Booking,
	slotID string,
	policy domain.BookingPolicy,
) int {
	count := 0

	for _, booking := range bookings {
		if booking == nil || !booking.IsActive() {
			continue
		}
		if booking.SlotID != slotID || booking.BookingDate != date {
			continue
		}

		bookingStart, err := booking.StartsAt(policy.Location)
		if err != nil {
			// Если не можем вычислить начало бронирования, пропускаем
			continue
		}
		bookingEnd, err := booking.EndsAt(policy.Location, policy.IntervalMinutes)
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if bookingStart.Before(end) && bookingEnd.After(start) {
			count++
		}
	}

	return count
}
