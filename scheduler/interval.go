package scheduler

import (
	"fmt"
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching at an edge is not an overlap, so
// back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// clockOverlaps is the same rule for "HH:MM" strings. Zero-padded 24h clock
// strings compare correctly as plain strings.
func clockOverlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// windowBounds projects an availability window onto a concrete date, in that
// date's location.
func windowBounds(w *models.StaffAvailability, date time.Time) (time.Time, time.Time, error) {
	open, err := parseClock(w.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	closeAt, err := parseClock(w.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(open), midnight.Add(closeAt), nil
}
