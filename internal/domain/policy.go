package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// BookingPolicy правила выбора дат и времени
type BookingPolicy struct {
	DayStart           types.TimeString // первый слот дня
	LastSlotStart      types.TimeString // последний слот дня (включительно)
	IntervalMinutes    int              // шаг сетки слотов
	AdvanceBookingDays int              // сколько дней вперед от сегодня можно бронировать
	Location           *time.Location   // фиксированная локация отображения
}

// DefaultBookingPolicy политика по умолчанию
func DefaultBookingPolicy() BookingPolicy {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.FixedZone("IST", 5*60*60+30*60)
	}
	return BookingPolicy{
		DayStart:           DefaultDayStart,
		LastSlotStart:      DefaultLastSlotStart,
		IntervalMinutes:    DefaultIntervalMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		Location:           loc,
	}
}

// TimeSlot слот сетки времени с признаком доступности
type TimeSlot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}
