package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/kvstore"
)

// Repository хранит AppState одним JSON-блобом под одним ключом
// Все изменения проходят через Do и выполняются последовательно
type Repository struct {
	store   Store
	key     string
	metrics Metrics
	logger  Logger

	mu sync.Mutex
}

// NewRepository создает репозиторий состояния; metrics может быть nil
func NewRepository(store Store, key string, metrics Metrics, logger Logger) *Repository {
	return &Repository{
		store:   store,
		key:     key,
		metrics: metrics,
		logger:  logger,
	}
}

// Load читает состояние
// Ошибки чтения и разбора логируются, в этом случае возвращается пустое состояние
func (r *Repository) Load(ctx context.Context) *domain.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Save перезаписывает состояние целиком
func (r *Repository) Save(ctx context.Context, state *domain.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, state)
}

// Do выполняет read-modify-write под блокировкой
// Если fn вернула ошибку, состояние не сохраняется
func (r *Repository) Do(ctx context.Context, fn func(state *domain.AppState) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.load(ctx)
	if err := fn(state); err != nil {
		return err
	}
	return r.save(ctx, state)
}

// Clear удаляет сохраненное состояние
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, r.key); err != nil {
		r.logger.Error("StateRepository.Clear: key=%s: %v", r.key, err)
		return fmt.Errorf("%w: Clear - delete key %s: %v", ErrClear, r.key, err)
	}
	r.logger.Info("StateRepository.Clear: key=%s removed", r.key)
	return nil
}

func (r *Repository) load(ctx context.Context) *domain.AppState {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			r.logger.Error("StateRepository.Load: failed to read key=%s: %v", r.key, err)
		}
		return domain.NewAppState()
	}

	state, err := Decode(data)
	if err != nil {
		r.logger.Error("StateRepository.Load: failed to decode key=%s: %v", r.key, err)
		return domain.NewAppState()
	}
	return state
}

func (r *Repository) save(ctx context.Context, state *domain.AppState) error {
	data, err := Encode(state)
	if err != nil {
		r.logger.Error("StateRepository.Save: %v", err)
		r.observeWrite(err)
		return err
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		r.logger.Error("StateRepository.Save: failed to write key=%s: %v", r.key, err)
		r.observeWrite(err)
		return fmt.Errorf("%w: Save - key %s: %v", ErrSave, r.key, err)
	}

	r.observeWrite(nil)
	return nil
}

func (r *Repository) observeWrite(err error) {
	if r.metrics != nil {
		r.metrics.StateWrite(err)
	}
}

// Encode сериализует состояние в JSON
func Encode(state *domain.AppState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Decode разбирает JSON состояния; отсутствующие списки заменяются пустыми
func Decode(data []byte) (*domain.AppState, error) {
	state := domain.NewAppState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.ParkingSlots == nil {
		state.ParkingSlots = []domain.ParkingSlot{}
	}
	if state.ActiveBookings == nil {
		state.ActiveBookings = []domain.Booking{}
	}
	return state, nil
}
