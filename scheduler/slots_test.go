package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

func seedBooking(f *fakeStore, staffID uint, start, end time.Time) {
	f.nextID++
	a := &models.Appointment{
		StaffID:   &staffID,
		StartTime: start,
		EndTime:   end,
		Status:    models.StatusConfirmed,
	}
	a.ID = f.nextID
	f.appointments[a.ID] = a
}

func slotStore() *fakeStore {
	f := newFakeStore()
	f.addService(1, "Haircut", 60, 500)
	f.addStaff(1, "Asha")
	f.link(1, 1)
	f.addWindow(1, 1, "09:00", "12:00")
	return f
}

func slotStarts(list *SlotList) []time.Time {
	var out []time.Time
	for _, s := range list.Slots {
		out = append(out, s.StartTime)
	}
	return out
}

func TestGenerateSlotsAroundExistingBooking(t *testing.T) {
	f := slotStore()
	seedBooking(f, 1, at(10, 0), at(11, 0))
	e := newTestEngine(f)

	list, err := e.GenerateSlots(1, 1, testNow)
	require.NoError(t, err)

	// 09:00 ends exactly when the booking starts and 11:00 starts exactly
	// when it ends; 09:30 through 10:30 would overlap.
	assert.Equal(t, []time.Time{at(9, 0), at(11, 0)}, slotStarts(list))
	assert.Empty(t, list.Message)
}

func TestGenerateSlotsSkipsPastTimes(t *testing.T) {
	f := slotStore()
	e := newTestEngine(f)
	e.now = func() time.Time { return at(9, 45) }

	list, err := e.GenerateSlots(1, 1, at(9, 45))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(10, 0), at(10, 30), at(11, 0)}, slotStarts(list))
}

func TestGenerateSlotsPastDate(t *testing.T) {
	f := slotStore()
	e := newTestEngine(f)

	list, err := e.GenerateSlots(1, 1, testNow.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, list.Slots)
	assert.Contains(t, list.Message, "past")
}

func TestGenerateSlotsFullyBooked(t *testing.T) {
	f := slotStore()
	seedBooking(f, 1, at(9, 0), at(12, 0))
	e := newTestEngine(f)

	list, err := e.GenerateSlots(1, 1, testNow)
	require.NoError(t, err)
	assert.Empty(t, list.Slots)
	assert.NotEmpty(t, list.Message)
}

func TestGenerateSlotsNoWindowForWeekday(t *testing.T) {
	f := slotStore()
	e := newTestEngine(f)

	// Tuesday has no configured window.
	list, err := e.GenerateSlots(1, 1, testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, list.Slots)
	assert.Empty(t, list.Message)
}

func TestGenerateSlotsIdempotent(t *testing.T) {
	f := slotStore()
	seedBooking(f, 1, at(10, 0), at(11, 0))
	e := newTestEngine(f)

	first, err := e.GenerateSlots(1, 1, testNow)
	require.NoError(t, err)
	second, err := e.GenerateSlots(1, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlotsUnknownStaffOrService(t *testing.T) {
	f := slotStore()
	e := newTestEngine(f)

	_, err := e.GenerateSlots(99, 1, testNow)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = e.GenerateSlots(1, 99, testNow)
	assert.ErrorAs(t, err, &notFound)
}
