package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

func bookingStore() *fakeStore {
	f := newFakeStore()
	f.addService(1, "Haircut", 30, 300)
	f.addService(2, "Coloring", 45, 1200)
	f.addStaff(1, "Asha")
	f.addStaff(2, "Meera")
	f.link(1, 1)
	f.link(2, 2)
	// Monday and Tuesday, long days so early-morning bookings fit.
	for day := 1; day <= 2; day++ {
		f.addWindow(1, day, "07:00", "17:00")
		f.addWindow(2, day, "07:00", "17:00")
	}
	return f
}

func owner() Actor { return Actor{UserID: 7, Role: models.RoleCustomer} }

func TestCreateBookingSequentialLayout(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	requests := []ServiceRequest{
		{ServiceID: 1, StaffID: 1},
		{ServiceID: 2, StaffID: 2},
	}
	appointment, events, err := e.CreateBooking(7, requests, at(10, 0), "first visit")
	require.NoError(t, err)

	assert.Equal(t, at(10, 0), appointment.StartTime)
	assert.Equal(t, at(11, 15), appointment.EndTime, "end = start + 30m + 45m")
	assert.Equal(t, models.StatusPending, appointment.Status)

	require.Len(t, appointment.Services, 2)
	assert.Equal(t, at(10, 0), appointment.Services[0].StartTime)
	assert.Equal(t, at(10, 30), appointment.Services[0].EndTime)
	assert.Equal(t, at(10, 30), appointment.Services[1].StartTime)
	assert.Equal(t, at(11, 15), appointment.Services[1].EndTime)

	// First pair is denormalized as the primary service/staff.
	require.NotNil(t, appointment.ServiceID)
	assert.Equal(t, uint(1), *appointment.ServiceID)
	require.NotNil(t, appointment.StaffID)
	assert.Equal(t, uint(1), *appointment.StaffID)

	require.Len(t, events, 1)
	assert.Equal(t, EventBookingCreated, events[0].Kind)
}

func TestCreateBookingFullSpanConflict(t *testing.T) {
	f := bookingStore()
	// Asha only performs the first 30 minutes, but she is validated against
	// the whole appointment span.
	seedBooking(f, 1, at(11, 0), at(11, 30))
	e := newTestEngine(f)

	requests := []ServiceRequest{
		{ServiceID: 1, StaffID: 1},
		{ServiceID: 2, StaffID: 2},
	}
	_, _, err := e.CreateBooking(7, requests, at(10, 30), "")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreateBookingBackToBackAllowed(t *testing.T) {
	f := bookingStore()
	seedBooking(f, 1, at(9, 30), at(10, 0))
	e := newTestEngine(f)

	_, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, at(10, 0), "")
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	var validation *ValidationError

	_, _, err := e.CreateBooking(7, nil, at(10, 0), "")
	assert.ErrorAs(t, err, &validation)

	// Meera is not linked to the haircut service.
	_, _, err = e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 2}}, at(10, 0), "")
	assert.ErrorAs(t, err, &validation)

	f.services[1].IsActive = false
	_, _, err = e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, at(10, 0), "")
	assert.ErrorAs(t, err, &validation)
}

func TestCreateBookingOutsideWindow(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	// 16:45 + 30m runs past the 17:00 close.
	_, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, at(16, 45), "")
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)

	// Ending exactly at close is fine.
	_, _, err = e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, at(16, 30), "")
	assert.NoError(t, err)
}

func TestRescheduleShiftsAllAssignments(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	tuesday := at(10, 0).AddDate(0, 0, 1)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{
		{ServiceID: 1, StaffID: 1},
		{ServiceID: 2, StaffID: 2},
	}, tuesday, "")
	require.NoError(t, err)

	newStart := tuesday.Add(4 * time.Hour)
	updated, events, err := e.Reschedule(appointment.ID, newStart, owner())
	require.NoError(t, err)

	assert.Equal(t, newStart, updated.StartTime)
	assert.Equal(t, newStart.Add(75*time.Minute), updated.EndTime)
	assert.Equal(t, newStart, updated.Services[0].StartTime)
	assert.Equal(t, newStart.Add(30*time.Minute), updated.Services[0].EndTime)
	assert.Equal(t, newStart.Add(30*time.Minute), updated.Services[1].StartTime)
	assert.Equal(t, newStart.Add(75*time.Minute), updated.Services[1].EndTime)

	require.Len(t, events, 1)
	assert.Equal(t, EventBookingRescheduled, events[0].Kind)
}

func TestRescheduleExcludesSelfFromConflictCheck(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	tuesday := at(10, 0).AddDate(0, 0, 1)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	require.NoError(t, err)

	// Moving by 15 minutes overlaps the appointment's own old slot.
	_, _, err = e.Reschedule(appointment.ID, tuesday.Add(15*time.Minute), owner())
	assert.NoError(t, err)
}

func TestRescheduleNoticeBoundary(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	// Exactly 24 hours ahead: allowed.
	boundary := testNow.Add(24 * time.Hour)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, boundary, "")
	require.NoError(t, err)
	_, _, err = e.Reschedule(appointment.ID, boundary.Add(2*time.Hour), owner())
	assert.NoError(t, err)

	// 23 hours ahead: too late.
	tooSoon, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 2, StaffID: 2}}, testNow.Add(23*time.Hour), "")
	require.NoError(t, err)
	_, _, err = e.Reschedule(tooSoon.ID, boundary.Add(4*time.Hour), owner())
	var policy *PolicyError
	assert.ErrorAs(t, err, &policy)
}

func TestRescheduleAuthorization(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	tuesday := at(10, 0).AddDate(0, 0, 1)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	require.NoError(t, err)

	stranger := Actor{UserID: 8, Role: models.RoleCustomer}
	_, _, err = e.Reschedule(appointment.ID, tuesday.Add(time.Hour), stranger)
	var forbidden *ForbiddenError
	assert.ErrorAs(t, err, &forbidden)

	// Admins may move anyone's booking.
	admin := Actor{UserID: 8, Role: models.RoleAdmin}
	_, _, err = e.Reschedule(appointment.ID, tuesday.Add(time.Hour), admin)
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	tuesday := at(10, 0).AddDate(0, 0, 1)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	require.NoError(t, err)

	cancelled, events, err := e.Cancel(appointment.ID, owner())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	require.Len(t, events, 1)
	assert.Equal(t, EventBookingCancelled, events[0].Kind)

	// Cancellation is terminal.
	_, _, err = e.Cancel(appointment.ID, owner())
	var policy *PolicyError
	assert.ErrorAs(t, err, &policy)
	_, _, err = e.Reschedule(appointment.ID, tuesday.Add(time.Hour), owner())
	assert.ErrorAs(t, err, &policy)
}

func TestCancelNoticeBoundary(t *testing.T) {
	f := bookingStore()
	// Distinct knobs so cancellation provably reads its own limit.
	e := NewEngine(f, &config.Config{MinRescheduleHours: 2, MinCancelHours: 24})
	e.now = func() time.Time { return testNow }

	// Exactly 24 hours ahead: allowed.
	boundary := testNow.Add(24 * time.Hour)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, boundary, "")
	require.NoError(t, err)
	cancelled, _, err := e.Cancel(appointment.ID, owner())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// 23 hours ahead: too late to cancel, even though the reschedule limit
	// would still allow a move.
	tooSoon, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 2, StaffID: 2}}, testNow.Add(23*time.Hour), "")
	require.NoError(t, err)
	_, _, err = e.Cancel(tooSoon.ID, owner())
	var policy *PolicyError
	assert.ErrorAs(t, err, &policy)
	_, _, err = e.Reschedule(tooSoon.ID, testNow.Add(25*time.Hour), owner())
	assert.NoError(t, err, "reschedule uses its own, shorter notice limit")
}

func TestCancelledSlotReopens(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)

	tuesday := at(10, 0).AddDate(0, 0, 1)
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	require.NoError(t, err)

	_, _, err = e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	_, _, err = e.Cancel(appointment.ID, owner())
	require.NoError(t, err)

	_, _, err = e.CreateBooking(7, []ServiceRequest{{ServiceID: 1, StaffID: 1}}, tuesday, "")
	assert.NoError(t, err)
}
