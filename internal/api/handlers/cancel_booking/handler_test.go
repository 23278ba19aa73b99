package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeService struct {
	err                   error
	bookingID, employeeID string
}

func (f *fakeService) Cancel(_ context.Context, bookingID, employeeID string) error {
	f.bookingID, f.employeeID = bookingID, employeeID
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"not owner", bookings.ErrAccessDenied, http.StatusForbidden},
		{"not active", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"store down", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

			req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1/cancel", nil)
			req = req.WithContext(middleware.WithEmployeeID(req.Context(), "EMP001"))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "b-1", svc.bookingID)
			assert.Equal(t, "EMP001", svc.employeeID)
		})
	}
}
