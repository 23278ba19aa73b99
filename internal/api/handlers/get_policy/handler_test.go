package get_policy

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/availability"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

func newHandler() *Handler {
	checker := availability.NewChecker(domain.BookingPolicy{
		DayStart:           "21:00",
		LastSlotStart:      "22:30",
		IntervalMinutes:    30,
		AdvanceBookingDays: 1,
		Location:           time.UTC,
	})
	return NewHandler(checker, fakeClock{now: time.Date(2025, 10, 15, 23, 0, 0, 0, time.UTC)})
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/policy", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"dayStart":"21:00","lastSlotStart":"22:30","intervalMinutes":30,
		"advanceBookingDays":1,"timezone":"UTC",
		"timeSlots":["21:00","21:30","22:00","22:30"]
	}`, rec.Body.String())
}

func TestHandleDates(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().HandleDates(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"today":"2025-10-15","dates":["2025-10-15","2025-10-16"]}`, rec.Body.String())
}
