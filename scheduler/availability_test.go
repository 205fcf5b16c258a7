package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

func window(id uint, day int, start, end string) models.StaffAvailability {
	w := models.StaffAvailability{DayOfWeek: day, StartTime: start, EndTime: end}
	w.ID = id
	return w
}

func TestValidateWindowRejectsBadInput(t *testing.T) {
	bad := window(0, 7, "09:00", "17:00")
	err := ValidateWindow(nil, &bad, 0)
	assert.Error(t, err)

	bad = window(0, 1, "nine", "17:00")
	assert.Error(t, ValidateWindow(nil, &bad, 0))

	bad = window(0, 1, "17:00", "09:00")
	assert.Error(t, ValidateWindow(nil, &bad, 0))

	bad = window(0, 1, "09:00", "09:00")
	assert.Error(t, ValidateWindow(nil, &bad, 0), "empty window is invalid")
}

func TestValidateWindowOverlap(t *testing.T) {
	existing := []models.StaffAvailability{window(1, 1, "09:00", "13:00")}

	overlapping := window(0, 1, "12:00", "17:00")
	err := ValidateWindow(existing, &overlapping, 0)
	require.Error(t, err)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)

	// Touching windows are fine.
	adjacent := window(0, 1, "13:00", "17:00")
	assert.NoError(t, ValidateWindow(existing, &adjacent, 0))

	// Same hours on a different day are fine.
	otherDay := window(0, 2, "12:00", "17:00")
	assert.NoError(t, ValidateWindow(existing, &otherDay, 0))
}

func TestWeeklySchedule(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	windows, err := e.WeeklySchedule(1)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	for _, w := range windows {
		assert.Equal(t, uint(1), w.StaffID)
	}

	_, err = e.WeeklySchedule(99)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestValidateWindowExcludesSelfOnUpdate(t *testing.T) {
	existing := []models.StaffAvailability{window(5, 1, "09:00", "13:00")}

	// Updating window 5 to overlap its own old hours is allowed.
	updated := window(5, 1, "10:00", "14:00")
	assert.NoError(t, ValidateWindow(existing, &updated, 5))

	// But not to overlap a different window.
	existing = append(existing, window(6, 1, "14:00", "18:00"))
	updated = window(5, 1, "10:00", "15:00")
	assert.Error(t, ValidateWindow(existing, &updated, 5))
}
