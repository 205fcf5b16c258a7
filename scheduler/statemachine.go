package scheduler

import (
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// requirePaid enforces the payment gate: confirmation and completion are
// impossible while no payment exists or the payment is not "paid".
func (e *Engine) requirePaid(appointmentID uint) (*models.Payment, error) {
	payment, err := e.store.PaymentByAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, Policyf("payment is required and must be completed first. Payment status: no payment found")
	}
	if payment.Status != models.PaymentPaid {
		return nil, Policyf("payment is required and must be completed first. Payment status: %s", payment.Status)
	}
	return payment, nil
}

// Confirm moves a pending appointment to confirmed. Admin only, and gated on
// a provider-verified paid payment.
func (e *Engine) Confirm(appointmentID uint, actor Actor) (*models.Appointment, []Event, error) {
	if !actor.isAdmin() {
		return nil, nil, Forbiddenf("only admins can confirm appointments")
	}

	appointment, err := e.store.AppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment.Status == models.StatusConfirmed {
		return nil, nil, Policyf("appointment is already confirmed")
	}
	if appointment.Status == models.StatusCancelled {
		return nil, nil, Policyf("cannot confirm a cancelled appointment")
	}
	if err := appointment.CanTransition(models.StatusConfirmed); err != nil {
		return nil, nil, Policyf("%v", err)
	}

	payment, err := e.requirePaid(appointmentID)
	if err != nil {
		return nil, nil, err
	}

	appointment.Status = models.StatusConfirmed
	if err := e.store.SaveAppointment(appointment); err != nil {
		return nil, nil, err
	}

	events := []Event{
		{Kind: EventBookingConfirmed, Appointment: appointment},
		{Kind: EventInvoiceReady, Appointment: appointment, Payment: payment},
	}
	return appointment, events, nil
}

// CompleteService marks one service assignment completed. Staff may only
// complete assignments assigned to them; admins may complete any. When the
// last assignment completes, the appointment auto-transitions to completed.
func (e *Engine) CompleteService(appointmentID, serviceID uint, actor Actor) (*models.Appointment, []Event, error) {
	appointment, err := e.store.AppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}

	var assignment *models.ServiceAssignment
	for i := range appointment.Services {
		if appointment.Services[i].ServiceID == serviceID {
			assignment = &appointment.Services[i]
			break
		}
	}
	if assignment == nil {
		return nil, nil, NotFoundf("service not found in this appointment")
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleStaff:
		if actor.StaffID == 0 || assignment.StaffID != actor.StaffID {
			return nil, nil, Forbiddenf("you can only complete services assigned to you")
		}
	default:
		return nil, nil, Forbiddenf("only staff members can complete services")
	}

	if assignment.Status == models.ServiceCompleted {
		return nil, nil, Policyf("service is already completed")
	}
	if appointment.Status == models.StatusCancelled {
		return nil, nil, Policyf("cannot complete service in a cancelled appointment")
	}
	if _, err := e.requirePaid(appointmentID); err != nil {
		return nil, nil, err
	}

	assignment.Status = models.ServiceCompleted

	allDone := true
	for i := range appointment.Services {
		if appointment.Services[i].Status != models.ServiceCompleted {
			allDone = false
			break
		}
	}

	err = e.store.Transact(func(tx Store) error {
		if err := tx.SaveAssignment(assignment); err != nil {
			return err
		}
		if allDone && appointment.Status != models.StatusCompleted {
			appointment.Status = models.StatusCompleted
			return tx.SaveAppointment(appointment)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Intermediate per-service completion is silent; the customer only hears
	// about the appointment once the last assignment is done.
	var events []Event
	if allDone {
		events = append(events, Event{Kind: EventBookingCompleted, Appointment: appointment})
	}
	return appointment, events, nil
}

// CompleteAll bulk-completes every assignment and the appointment itself.
// Kept for single-service consumers that never call per-service completion.
func (e *Engine) CompleteAll(appointmentID uint, actor Actor) (*models.Appointment, []Event, error) {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleStaff {
		return nil, nil, Forbiddenf("only staff members can complete appointments")
	}

	appointment, err := e.store.AppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment.Status == models.StatusCompleted {
		return nil, nil, Policyf("appointment is already completed")
	}
	if appointment.Status == models.StatusCancelled {
		return nil, nil, Policyf("cannot complete a cancelled appointment")
	}
	if _, err := e.requirePaid(appointmentID); err != nil {
		return nil, nil, err
	}

	for i := range appointment.Services {
		appointment.Services[i].Status = models.ServiceCompleted
	}
	appointment.Status = models.StatusCompleted
	if err := e.store.SaveAppointment(appointment); err != nil {
		return nil, nil, err
	}

	events := []Event{{Kind: EventBookingCompleted, Appointment: appointment}}
	return appointment, events, nil
}
