package notify

import (
	"log"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/scheduler"
)

// Notifier sends customer-facing messages for booking lifecycle events.
// Implementations must be safe to call after the triggering transaction has
// committed; a failed send never affects booking state.
type Notifier interface {
	SendBookingCreated(a *models.Appointment) error
	SendBookingConfirmation(a *models.Appointment) error
	SendInvoice(a *models.Appointment, p *models.Payment) error
	SendReschedule(a *models.Appointment) error
	SendCancellation(a *models.Appointment) error
	SendCompletion(a *models.Appointment) error
	SendReminder(a *models.Appointment) error
	SendFifteenMinuteReminder(a *models.Appointment) error
}

// Dispatch fans lifecycle events out to the notifier. Failures are logged and
// swallowed: notifications are best effort and must never fail the request
// that produced the event.
func Dispatch(n Notifier, events []scheduler.Event) {
	for _, ev := range events {
		var err error
		switch ev.Kind {
		case scheduler.EventBookingCreated:
			err = n.SendBookingCreated(ev.Appointment)
		case scheduler.EventBookingConfirmed:
			err = n.SendBookingConfirmation(ev.Appointment)
		case scheduler.EventInvoiceReady:
			err = n.SendInvoice(ev.Appointment, ev.Payment)
		case scheduler.EventBookingRescheduled:
			err = n.SendReschedule(ev.Appointment)
		case scheduler.EventBookingCancelled:
			err = n.SendCancellation(ev.Appointment)
		case scheduler.EventBookingCompleted:
			err = n.SendCompletion(ev.Appointment)
		}
		if err != nil {
			log.Printf("Failed to send %s notification for appointment %d: %v", ev.Kind, ev.Appointment.ID, err)
		}
	}
}
