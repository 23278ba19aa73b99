package get_slot_availability

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Request модель запроса доступности места на дату
type Request struct {
	SlotID    string
	Date      types.DateString
	StartTime *types.TimeString // если задано, рассчитываются времена окончания
}

// Response модель ответа с сеткой времени и вариантами выбора
type Response struct {
	SlotID         string
	Date           types.DateString
	SlotStatus     domain.SlotStatus
	TimeSlots      []domain.TimeSlot
	StartTimes     []types.TimeString
	EndTimes       []types.TimeString
	AvailableDates []types.DateString
}
