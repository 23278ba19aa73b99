package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/kvstore"
	stateRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/state"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type failingService struct{}

func (failingService) List(context.Context, *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	return nil, bookings.ErrInternal
}

func newBookingService(t *testing.T) *bookings.Service {
	t.Helper()

	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	state := stateRepo.NewRepository(store, domain.StateKey, nil, logger.NewNop())

	require.NoError(t, state.Do(context.Background(), func(s *domain.AppState) error {
		s.ActiveBookings = append(s.ActiveBookings,
			domain.Booking{
				ID: "b-1", SlotID: "US-P01", EmployeeID: "EMP001", Section: domain.SectionUS,
				BookedAt:    time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
				BookingDate: types.DateString("2025-10-15"), StartTime: types.TimeString("10:00"),
				EndTime: types.TimeString("11:00"), Status: domain.StatusActive,
			},
			domain.Booking{
				ID: "b-2", SlotID: "LS-P02", EmployeeID: "EMP002", Section: domain.SectionLS,
				BookedAt:    time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
				BookingDate: types.DateString("2025-10-16"), StartTime: types.TimeString("14:00"),
				EndTime: types.TimeString("15:00"), Status: domain.StatusCancelled,
			},
		)
		return nil
	}))

	return bookings.NewService(state, domain.DefaultBookingPolicy(), nil, logger.NewNop())
}

func TestHandle(t *testing.T) {
	svc := newBookingService(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []string
	}{
		{"no filter", "", http.StatusOK, []string{"b-1", "b-2"}},
		{"by status", "?status=active", http.StatusOK, []string{"b-1"}},
		{"by date", "?date=2025-10-16", http.StatusOK, []string{"b-2"}},
		{"by slot", "?slotId=US-P01", http.StatusOK, []string{"b-1"}},
		{"unknown status", "?status=pending", http.StatusBadRequest, nil},
		{"broken date", "?date=16-10-2025", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+tt.query, nil)

			NewHandler(svc, logger.NewNop()).Handle(rec, r)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rec.Body.String(), msgInvalidFilter)
				return
			}
			for _, id := range tt.wantIDs {
				assert.Contains(t, rec.Body.String(), `"id":"`+id+`"`)
			}
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)

	NewHandler(failingService{}, logger.NewNop()).Handle(rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
