package slots

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Config параметры генерации мест
type Config struct {
	SlotsPerSection   int
	AvailabilityRatio float64
	Seed              int64 // 0 - случайный
}

// Service управляет списком парковочных мест
type Service struct {
	state        StateRepository
	cfg          Config
	timeProvider TimeProvider
	logger       Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewService создает новый экземпляр сервиса
func NewService(state StateRepository, cfg Config, logger Logger) *Service {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		state:        state,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		rnd:          rand.New(rand.NewSource(seed)),
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Generate создает места для всех секций
// Каждое место свободно с вероятностью AvailabilityRatio, иначе занято OTHER_USER
func (s *Service) Generate() []domain.ParkingSlot {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.ParkingSlot, 0, len(domain.Sections)*s.cfg.SlotsPerSection)
	for _, section := range domain.Sections {
		for i := 1; i <= s.cfg.SlotsPerSection; i++ {
			slot := domain.ParkingSlot{
				ID:      domain.SlotID(section, i),
				Section: section,
				Status:  domain.SlotAvailable,
			}
			if s.rnd.Float64() >= s.cfg.AvailabilityRatio {
				slot.Status = domain.SlotBooked
				slot.BookedBy = ptr.Ptr(domain.OtherUserEmployeeID)
				slot.BookedAt = ptr.Ptr(now)
			}
			result = append(result, slot)
		}
	}
	return result
}

// EnsureInitialized генерирует места, только если в состоянии их нет
func (s *Service) EnsureInitialized(ctx context.Context) (bool, error) {
	created := false
	err := s.state.Do(ctx, func(state *domain.AppState) error {
		if len(state.ParkingSlots) > 0 {
			return nil
		}
		state.ParkingSlots = s.Generate()
		created = true
		return nil
	})
	if err != nil {
		s.logger.Error("EnsureInitialized: failed to save slots: %v", err)
		return false, fmt.Errorf("%w: EnsureInitialized - save state: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("EnsureInitialized: generated %d slots", len(domain.Sections)*s.cfg.SlotsPerSection)
	}
	return created, nil
}

// Reset генерирует места заново и удаляет все бронирования
func (s *Service) Reset(ctx context.Context) error {
	err := s.state.Do(ctx, func(state *domain.AppState) error {
		state.ParkingSlots = s.Generate()
		state.ActiveBookings = []domain.Booking{}
		return nil
	})
	if err != nil {
		s.logger.Error("Reset: failed to save state: %v", err)
		return fmt.Errorf("%w: Reset - save state: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: slots regenerated, bookings dropped")
	return nil
}

// List возвращает места по секциям в порядке перечисления секций
func (s *Service) List(ctx context.Context) *models.Overview {
	state := s.state.Load(ctx)

	bySection := make(map[domain.Section][]domain.ParkingSlot, len(domain.Sections))
	for _, slot := range state.ParkingSlots {
		bySection[slot.Section] = append(bySection[slot.Section], slot)
	}

	overview := &models.Overview{
		Sections: make([]models.SectionSlots, 0, len(domain.Sections)),
		Stats:    domain.CalculateStats(state.ParkingSlots),
	}
	for _, section := range domain.Sections {
		slots := bySection[section]
		if slots == nil {
			slots = []domain.ParkingSlot{}
		}
		overview.Sections = append(overview.Sections, models.SectionSlots{
			Section: section,
			Slots:   slots,
			Stats:   domain.CalculateStats(slots),
		})
	}
	return overview
}

// Get возвращает место по идентификатору
func (s *Service) Get(ctx context.Context, slotID string) (*domain.ParkingSlot, error) {
	state := s.state.Load(ctx)
	slot := state.FindSlot(slotID)
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	result := *slot
	return &result, nil
}
