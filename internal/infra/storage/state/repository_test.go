package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/kvstore"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

const testKey = "gupio-parking-data"

type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type countingMetrics struct {
	ok, failed int
}

func (c *countingMetrics) StateWrite(err error) {
	if err != nil {
		c.failed++
		return
	}
	c.ok++
}

func TestRepository_LoadEmpty(t *testing.T) {
	repo := NewRepository(newMemStore(), testKey, nil, logger.NewNop())

	state := repo.Load(context.Background())
	require.NotNil(t, state)
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.ParkingSlots)
	assert.NotNil(t, state.ActiveBookings)
}

func TestRepository_DoPersists(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	metrics := &countingMetrics{}
	repo := NewRepository(store, testKey, metrics, logger.NewNop())

	err := repo.Do(ctx, func(s *domain.AppState) error {
		s.User = &domain.User{EmployeeID: "EMP001", Name: "Ganesh"}
		s.IsAuthenticated = true
		s.ParkingSlots = append(s.ParkingSlots, domain.ParkingSlot{ID: "US-P01", Section: domain.SectionUS, Status: domain.SlotAvailable})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.ok)

	state := repo.Load(ctx)
	require.NotNil(t, state.User)
	assert.Equal(t, "EMP001", state.User.EmployeeID)
	assert.True(t, state.IsAuthenticated)
	require.Len(t, state.ParkingSlots, 1)

	raw := string(store.data[testKey])
	assert.Contains(t, raw, `"parkingSlots"`)
	assert.Contains(t, raw, `"activeBookings"`)
	assert.Contains(t, raw, `"isAuthenticated":true`)
}

func TestRepository_DoErrorSkipsSave(t *testing.T) {
	store := newMemStore()
	repo := NewRepository(store, testKey, nil, logger.NewNop())

	errStop := errors.New("stop")
	err := repo.Do(context.Background(), func(s *domain.AppState) error {
		s.IsAuthenticated = true
		return errStop
	})

	assert.ErrorIs(t, err, errStop)
	assert.Zero(t, store.sets)
}

func TestRepository_CorruptedBlobIsEmpty(t *testing.T) {
	store := newMemStore()
	store.data[testKey] = []byte("{not json")
	repo := NewRepository(store, testKey, nil, logger.NewNop())

	state := repo.Load(context.Background())
	assert.Empty(t, state.ParkingSlots)
	assert.Empty(t, state.ActiveBookings)
}

func TestRepository_ReadFailureIsEmpty(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk gone")
	repo := NewRepository(store, testKey, nil, logger.NewNop())

	state := repo.Load(context.Background())
	assert.Empty(t, state.ParkingSlots)
}

func TestRepository_WriteFailure(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("quota exceeded")
	metrics := &countingMetrics{}
	repo := NewRepository(store, testKey, metrics, logger.NewNop())

	err := repo.Save(context.Background(), domain.NewAppState())
	assert.ErrorIs(t, err, ErrSave)
	assert.Equal(t, 1, metrics.failed)
}

func TestRepository_DoIsSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newMemStore(), testKey, nil, logger.NewNop())

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Do(ctx, func(s *domain.AppState) error {
				s.ActiveBookings = append(s.ActiveBookings, domain.Booking{ID: fmt.Sprintf("b-%d", i)})
				return nil
			})
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Load(ctx).ActiveBookings, workers)
}

func TestRepository_Clear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := NewRepository(store, testKey, nil, logger.NewNop())

	require.NoError(t, repo.Save(ctx, domain.NewAppState()))
	require.NoError(t, repo.Clear(ctx))
	assert.Empty(t, store.data)
}

func TestDecode_BookingFields(t *testing.T) {
	state, err := Decode([]byte(`{
		"user": {"employeeId": "EMP002", "name": "Pratiksha"},
		"isAuthenticated": true,
		"parkingSlots": [{"id": "LS-P03", "section": "LS", "status": "booked", "bookedBy": "EMP002"}],
		"activeBookings": [{
			"id": "b1", "slotId": "LS-P03", "employeeId": "EMP002", "section": "LS",
			"bookedAt": "2025-10-15T08:00:00Z", "bookingDate": "2025-10-15",
			"bookingTime": "10:00", "bookingEndTime": "11:30", "status": "active"
		}]
	}`))
	require.NoError(t, err)

	require.Len(t, state.ActiveBookings, 1)
	b := state.ActiveBookings[0]
	assert.Equal(t, "LS-P03", b.SlotID)
	assert.Equal(t, "10:00", b.StartTime.String())
	assert.Equal(t, "11:30", b.EndTime.String())
	assert.Equal(t, domain.StatusActive, b.Status)

	require.Len(t, state.ParkingSlots, 1)
	assert.True(t, state.ParkingSlots[0].IsBookedBy("EMP002"))
}
