package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "06:00"},
		{name: "valid evening", input: "22:30"},
		{name: "single digit hour", input: "6:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), next)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)

	moment, err := TimeString("07:30").OnDate("2025-10-15", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 15, 7, 30, 0, 0, loc), moment)

	_, err = TimeString("07:30").OnDate("15-10-2025", loc)
	assert.ErrorIs(t, err, ErrInvalidDateString)
}

func TestDateString(t *testing.T) {
	d, err := NewDateStringFromString(" 2025-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-02-28"), d)

	_, err = NewDateStringFromString("2025-02-30")
	assert.ErrorIs(t, err, ErrInvalidDateString)

	midnight, err := d.Time(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), midnight)
}
