package scheduler

import (
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// Store is everything the scheduling engine needs from persistence. The
// production implementation is GORM-backed (store.go); tests use an in-memory
// fake.
type Store interface {
	ServiceByID(id uint) (*models.Service, error)
	StaffByID(id uint) (*models.Staff, error)
	// StaffCanPerform reports whether a staff<->service assignment exists.
	StaffCanPerform(staffID, serviceID uint) (bool, error)

	// Window returns the availability window for a staff member on a weekday,
	// or nil when none is configured (unconstrained for booking purposes).
	Window(staffID uint, weekday int) (*models.StaffAvailability, error)
	WindowsForStaff(staffID uint) ([]models.StaffAvailability, error)

	// HasConflict reports whether [start, end) overlaps any non-cancelled
	// appointment for the staff member. excludeAppointmentID skips one
	// appointment (self-exclusion when rescheduling); zero skips nothing.
	HasConflict(staffID uint, start, end time.Time, excludeAppointmentID uint) (bool, error)

	// DayAppointments returns non-cancelled appointments for the staff member
	// starting within [dayStart, dayEnd), ordered by start time.
	DayAppointments(staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	AppointmentByID(id uint) (*models.Appointment, error)
	// PaymentByAppointment returns nil when no payment record exists.
	PaymentByAppointment(appointmentID uint) (*models.Payment, error)

	// CreateAppointment persists the appointment and its service assignments
	// atomically.
	CreateAppointment(a *models.Appointment) error
	// SaveAppointment persists changes to the appointment and its assignments
	// atomically.
	SaveAppointment(a *models.Appointment) error
	SaveAssignment(sa *models.ServiceAssignment) error

	// Transact runs fn atomically against a store bound to the transaction.
	Transact(fn func(Store) error) error
}
