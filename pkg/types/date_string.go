package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format")

// DateString календарная дата в формате YYYY-MM-DD
type DateString string

// NewDateString создает DateString из time.Time в его собственной локации
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку вида "2025-10-15"
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(strings.TrimSpace(s))
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет формат YYYY-MM-DD
func (d DateString) Validate() error {
	if len(d) != len(dateLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// Time возвращает полночь даты d в указанной локации
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(dateLayout, string(d), loc)
}
