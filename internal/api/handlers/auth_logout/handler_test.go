package auth_logout

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeAuthService struct {
	err error
	got string
}

func (f *fakeAuthService) Logout(_ context.Context, employeeID string) error {
	f.got = employeeID
	return f.err
}

func newRequest(employeeID string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	if employeeID != "" {
		r = r.WithContext(middleware.WithEmployeeID(r.Context(), employeeID))
	}
	return r
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		err        error
		wantStatus int
		wantLogout string
	}{
		{"logged out", "EMP001", nil, http.StatusNoContent, "EMP001"},
		{"state write failed", "EMP001", errors.New("disk full"), http.StatusInternalServerError, "EMP001"},
		{"no employee in context", "", nil, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{err: tt.err}
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(tt.employeeID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLogout, svc.got)
		})
	}
}
