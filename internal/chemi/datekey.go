package chemi

import (
	"errors"
	"fmt"
	"time"
)

// DateKeyLayout is the calendar date format used in seeds.
const DateKeyLayout = "2006-01-02"

var (
	ErrInvalidDateKey = errors.New("invalid date key")
	ErrEmptyName      = errors.New("name is empty")
)

// DateKey formats the calendar date of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey validates a YYYY-MM-DD key and returns it as midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDateKey, key)
	}
	return t, nil
}
