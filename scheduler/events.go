package scheduler

import (
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

type EventKind string

const (
	EventBookingCreated     EventKind = "booking_created"
	EventBookingConfirmed   EventKind = "booking_confirmed"
	EventInvoiceReady       EventKind = "payment_invoice_ready"
	EventBookingRescheduled EventKind = "booking_rescheduled"
	EventBookingCancelled   EventKind = "booking_cancelled"
	EventBookingCompleted   EventKind = "booking_completed"
)

// Event is emitted by the engine after the transactional core of an operation
// succeeds. Notification dispatch consumes these post-commit; a failed
// notification never affects the operation that produced the event.
type Event struct {
	Kind        EventKind
	Appointment *models.Appointment
	Payment     *models.Payment
}
