package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

func admin() Actor { return Actor{UserID: 1, Role: models.RoleAdmin} }

func pendingBooking(t *testing.T, f *fakeStore, e *Engine) *models.Appointment {
	t.Helper()
	appointment, _, err := e.CreateBooking(7, []ServiceRequest{
		{ServiceID: 1, StaffID: 1},
		{ServiceID: 2, StaffID: 2},
	}, at(10, 0), "")
	require.NoError(t, err)
	return appointment
}

func TestConfirmRequiresAdmin(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)

	_, _, err := e.Confirm(appointment.ID, owner())
	var forbidden *ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestConfirmRequiresPayment(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)

	// No payment record at all.
	_, _, err := e.Confirm(appointment.ID, admin())
	var policy *PolicyError
	require.ErrorAs(t, err, &policy)

	// A pending payment is not enough.
	f.payments[appointment.ID] = &models.Payment{
		AppointmentID: appointment.ID,
		Status:        models.PaymentPending,
	}
	_, _, err = e.Confirm(appointment.ID, admin())
	assert.ErrorAs(t, err, &policy)

	f.setPaid(appointment.ID)
	confirmed, events, err := e.Confirm(appointment.ID, admin())
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)

	require.Len(t, events, 2)
	assert.Equal(t, EventBookingConfirmed, events[0].Kind)
	assert.Equal(t, EventInvoiceReady, events[1].Kind)
	assert.NotNil(t, events[1].Payment)
}

func TestConfirmTwice(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)

	_, _, err := e.Confirm(appointment.ID, admin())
	require.NoError(t, err)

	_, _, err = e.Confirm(appointment.ID, admin())
	var policy *PolicyError
	assert.ErrorAs(t, err, &policy)
}

func TestCompleteServiceOwnership(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)
	_, _, err := e.Confirm(appointment.ID, admin())
	require.NoError(t, err)

	// Staff 2 cannot complete staff 1's service.
	wrongStaff := Actor{UserID: 20, StaffID: 2, Role: models.RoleStaff}
	_, _, err = e.CompleteService(appointment.ID, 1, wrongStaff)
	var forbidden *ForbiddenError
	assert.ErrorAs(t, err, &forbidden)

	// Customers cannot complete anything.
	_, _, err = e.CompleteService(appointment.ID, 1, owner())
	assert.ErrorAs(t, err, &forbidden)

	rightStaff := Actor{UserID: 10, StaffID: 1, Role: models.RoleStaff}
	updated, events, err := e.CompleteService(appointment.ID, 1, rightStaff)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCompleted, updated.Services[0].Status)
	assert.Equal(t, models.StatusConfirmed, updated.Status, "one of two services done, appointment stays confirmed")
	assert.Empty(t, events, "partial completion is silent")
}

func TestCompleteLastServiceCompletesAppointment(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)
	_, _, err := e.Confirm(appointment.ID, admin())
	require.NoError(t, err)

	_, events, err := e.CompleteService(appointment.ID, 1, Actor{UserID: 10, StaffID: 1, Role: models.RoleStaff})
	require.NoError(t, err)
	assert.Empty(t, events)
	updated, events, err := e.CompleteService(appointment.ID, 2, Actor{UserID: 11, StaffID: 2, Role: models.RoleStaff})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.Len(t, events, 1)
	assert.Equal(t, EventBookingCompleted, events[0].Kind)

	// Completed appointments are frozen.
	var policy *PolicyError
	_, _, err = e.Cancel(appointment.ID, owner())
	assert.ErrorAs(t, err, &policy)
}

func TestCompleteServiceRequiresPayment(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)

	_, _, err := e.CompleteService(appointment.ID, 1, admin())
	var policy *PolicyError
	assert.ErrorAs(t, err, &policy)
}

func TestCompleteServiceUnknownService(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)

	_, _, err := e.CompleteService(appointment.ID, 99, admin())
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCompleteAll(t *testing.T) {
	f := bookingStore()
	e := newTestEngine(f)
	appointment := pendingBooking(t, f, e)
	f.setPaid(appointment.ID)

	_, _, err := e.CompleteAll(appointment.ID, owner())
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	updated, events, err := e.CompleteAll(appointment.ID, admin())
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	for _, sa := range updated.Services {
		assert.Equal(t, models.ServiceCompleted, sa.Status)
	}
	require.Len(t, events, 1)
	assert.Equal(t, EventBookingCompleted, events[0].Kind)
}
