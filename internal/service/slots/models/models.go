package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// SectionSlots места одной секции
type SectionSlots struct {
	Section domain.Section
	Slots   []domain.ParkingSlot
	Stats   domain.SlotStats
}

// Overview все места по секциям и общая статистика
type Overview struct {
	Sections []SectionSlots
	Stats    domain.SlotStats
}
