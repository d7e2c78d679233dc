package facility

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// CivilDate strips the clock and timezone, keeping the calendar day as seen in t's location
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween number of calendar days from -> to (negative if to is earlier)
func DaysBetween(from, to time.Time) int {
	return int(CivilDate(to).Sub(CivilDate(from)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar day
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, invalid("date", "must be in YYYY-MM-DD format")
	}
	return d, nil
}

func (a Adapter) checkAdvanceNotice(date, today time.Time) error {
	if a.AdvanceNoticeDays <= 0 {
		return nil
	}
	if DaysBetween(today, date) < a.AdvanceNoticeDays {
		return ErrAdvanceNotice
	}
	return nil
}

// startedByHour same-day filter: a slot counts as started once its start hour
// is not strictly after the current hour
func startedByHour(date time.Time, start int, now time.Time) bool {
	if !CivilDate(date).Equal(CivilDate(now)) {
		return false
	}
	return start <= now.Hour()
}
