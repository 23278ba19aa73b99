package domain

// AppState состояние приложения, хранится одним JSON-блобом
type AppState struct {
	User            *User         `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
	ParkingSlots    []ParkingSlot `json:"parkingSlots"`
	ActiveBookings  []Booking     `json:"activeBookings"`
}

// NewAppState создает пустое состояние
func NewAppState() *AppState {
	return &AppState{
		ParkingSlots:   []ParkingSlot{},
		ActiveBookings: []Booking{},
	}
}

// FindSlot возвращает указатель на место внутри состояния
func (s *AppState) FindSlot(slotID string) *ParkingSlot {
	for i := range s.ParkingSlots {
		if s.ParkingSlots[i].ID == slotID {
			return &s.ParkingSlots[i]
		}
	}
	return nil
}

// FindBooking возвращает указатель на бронирование внутри состояния
func (s *AppState) FindBooking(bookingID string) *Booking {
	for i := range s.ActiveBookings {
		if s.ActiveBookings[i].ID == bookingID {
			return &s.ActiveBookings[i]
		}
	}
	return nil
}

// BookingPointers возвращает бронирования как срез указателей (без копирования структуры)
func (s *AppState) BookingPointers() []*Booking {
	result := make([]*Booking, len(s.ActiveBookings))
	for i := range s.ActiveBookings {
		result[i] = &s.ActiveBookings[i]
	}
	return result
}

// CurrentBooking первое активное бронирование сотрудника
func (s *AppState) CurrentBooking(employeeID string) *Booking {
	for i := range s.ActiveBookings {
		b := &s.ActiveBookings[i]
		if b.EmployeeID == employeeID && b.IsActive() {
			return b
		}
	}
	return nil
}
