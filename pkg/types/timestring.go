package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
	minutesPerDay     = 24 * 60
)

var (
	// ErrInvalidTimeString is returned when a value is not a valid HH:MM wall-clock time
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow is returned when arithmetic leaves the 00:00-24:00 range
	ErrTimeOverflow = errors.New("time string overflow")
)

// TimeString is a facility-local wall-clock time "HH:MM" without date or timezone.
// "24:00" is accepted as the end of the day so that slots may close at midnight.
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString builds a TimeString from the hour and minute of t
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString parses "HH:MM" (or "HH:MM:SS", as returned by Postgres TIME)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" || s == "24:00:00" {
		return TimeString{minutes: minutesPerDay, valid: true}, nil
	}

	layout := timeLayout
	if len(s) == len(timeLayoutSeconds) {
		layout = timeLayoutSeconds
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeString{}, ErrInvalidTimeString
	}

	return NewTimeString(t), nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeString{}, ErrTimeOverflow
	}
	return TimeString{minutes: minutes, valid: true}, nil
}

// MustTimeString parses s and panics on error. Intended for static tables.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(fmt.Sprintf("types: bad time string %q", s))
	}
	return ts
}

// Minutes returns minutes since midnight
func (t TimeString) Minutes() int {
	return t.minutes
}

// Hour returns the hour component
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// IsZero reports whether the value was never set
func (t TimeString) IsZero() bool {
	return !t.valid
}

// AddMinutes returns t shifted by n minutes
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// Equal reports whether both values point to the same minute
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// On places the wall-clock time on the given calendar day in loc
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(t.minutes) * time.Minute)
}

// String returns "HH:MM"
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalText implements encoding.TextMarshaler
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeString) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = TimeString{}
		return nil
	}
	parsed, err := NewTimeStringFromString(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan implements sql.Scanner. Postgres TIME arrives as "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}
