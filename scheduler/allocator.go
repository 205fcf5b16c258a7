package scheduler

import (
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// ServiceRequest is one (service, staff) pair in a booking request, in the
// order the customer wants the services performed.
type ServiceRequest struct {
	ServiceID uint `json:"service_id"`
	StaffID   uint `json:"staff_id"`
}

// Actor identifies who is performing an operation. StaffID is the staff
// profile linked to the user, zero when the user has none.
type Actor struct {
	UserID  uint
	StaffID uint
	Role    string
}

func (a Actor) isAdmin() bool { return a.Role == models.RoleAdmin }

// Engine implements booking allocation, rescheduling, cancellation, slot
// generation and the appointment state machine on top of a Store.
type Engine struct {
	store Store
	cfg   *config.Config
	now   func() time.Time
}

func NewEngine(store Store, cfg *config.Config) *Engine {
	return &Engine{store: store, cfg: cfg, now: time.Now}
}

// resolved pairs a validated request with its loaded records.
type resolved struct {
	request ServiceRequest
	service *models.Service
	staff   *models.Staff
}

// CreateBooking lays out the requested services back to back from startTime,
// validates every staff member against their availability window and existing
// bookings over the full combined span, and persists the appointment plus one
// assignment per service atomically in pending state. The first pair is
// denormalized onto the appointment as the primary service/staff.
func (e *Engine) CreateBooking(userID uint, requests []ServiceRequest, startTime time.Time, notes string) (*models.Appointment, []Event, error) {
	if len(requests) == 0 {
		return nil, nil, Validationf("services array (or service_id/staff_id) and start_time are required")
	}
	if startTime.IsZero() {
		return nil, nil, Validationf("start_time is required")
	}

	var details []resolved
	totalDuration := time.Duration(0)
	for _, req := range requests {
		if req.ServiceID == 0 || req.StaffID == 0 {
			return nil, nil, Validationf("each service must have service_id and staff_id")
		}
		service, err := e.store.ServiceByID(req.ServiceID)
		if err != nil {
			return nil, nil, err
		}
		staff, err := e.store.StaffByID(req.StaffID)
		if err != nil {
			return nil, nil, err
		}
		if !service.IsActive {
			return nil, nil, Validationf("service %s is not currently offered", service.Name)
		}
		if !staff.IsActive {
			return nil, nil, Validationf("staff %s is not currently active", staff.Name)
		}
		can, err := e.store.StaffCanPerform(req.StaffID, req.ServiceID)
		if err != nil {
			return nil, nil, err
		}
		if !can {
			return nil, nil, Validationf("staff %s is not assigned to service %s", staff.Name, service.Name)
		}
		details = append(details, resolved{request: req, service: service, staff: staff})
		totalDuration += service.Duration()
	}

	end := startTime.Add(totalDuration)

	// Every staff member is validated against the full combined span, not
	// just their own sub-interval: the customer occupies the salon for the
	// whole appointment, so an earlier service cannot be scheduled around a
	// conflict that only hits a later sub-slot.
	for _, d := range details {
		if err := e.checkStaffWindow(d.staff, startTime, end); err != nil {
			return nil, nil, err
		}
		conflict, err := e.store.HasConflict(d.staff.ID, startTime, end, 0)
		if err != nil {
			return nil, nil, err
		}
		if conflict {
			return nil, nil, Conflictf("%s has a conflicting appointment at this time", d.staff.Name)
		}
	}

	primary := details[0]
	primaryServiceID := primary.request.ServiceID
	primaryStaffID := primary.request.StaffID
	appointment := &models.Appointment{
		UserID:    userID,
		ServiceID: &primaryServiceID,
		StaffID:   &primaryStaffID,
		StartTime: startTime,
		EndTime:   end,
		Status:    models.StatusPending,
		Notes:     notes,
	}

	// Strictly sequential sub-intervals: each service starts when the
	// previous one ends, even when different staff are involved.
	cursor := startTime
	for _, d := range details {
		serviceEnd := cursor.Add(d.service.Duration())
		appointment.Services = append(appointment.Services, models.ServiceAssignment{
			ServiceID: d.request.ServiceID,
			StaffID:   d.request.StaffID,
			StartTime: cursor,
			EndTime:   serviceEnd,
			Status:    models.ServicePending,
		})
		cursor = serviceEnd
	}

	if err := e.store.CreateAppointment(appointment); err != nil {
		return nil, nil, err
	}

	events := []Event{{Kind: EventBookingCreated, Appointment: appointment}}
	return appointment, events, nil
}

// Reschedule moves a non-terminal appointment to a new start time, shifting
// every service assignment by the same delta, and re-validates availability
// and conflicts (excluding the appointment itself) for each staff member.
func (e *Engine) Reschedule(appointmentID uint, newStart time.Time, actor Actor) (*models.Appointment, []Event, error) {
	if newStart.IsZero() {
		return nil, nil, Validationf("start_time is required")
	}

	appointment, err := e.store.AppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment.UserID != actor.UserID && !actor.isAdmin() {
		return nil, nil, Forbiddenf("you can only reschedule your own appointments")
	}
	if appointment.IsTerminal() {
		return nil, nil, Policyf("cannot reschedule %s appointments", appointment.Status)
	}
	if err := e.checkNotice(appointment.StartTime, e.cfg.MinRescheduleHours, "rescheduled"); err != nil {
		return nil, nil, err
	}

	delta := newStart.Sub(appointment.StartTime)
	newEnd := appointment.EndTime.Add(delta)

	for _, staffID := range assignedStaffIDs(appointment) {
		staff, err := e.store.StaffByID(staffID)
		if err != nil {
			return nil, nil, err
		}
		if err := e.checkStaffWindow(staff, newStart, newEnd); err != nil {
			return nil, nil, err
		}
		conflict, err := e.store.HasConflict(staffID, newStart, newEnd, appointment.ID)
		if err != nil {
			return nil, nil, err
		}
		if conflict {
			return nil, nil, Conflictf("this time slot is already booked")
		}
	}

	appointment.StartTime = newStart
	appointment.EndTime = newEnd
	for i := range appointment.Services {
		appointment.Services[i].StartTime = appointment.Services[i].StartTime.Add(delta)
		appointment.Services[i].EndTime = appointment.Services[i].EndTime.Add(delta)
	}

	if err := e.store.SaveAppointment(appointment); err != nil {
		return nil, nil, err
	}

	events := []Event{{Kind: EventBookingRescheduled, Appointment: appointment}}
	return appointment, events, nil
}

// Cancel marks the appointment cancelled. Cancellation is terminal and is a
// status change, never a delete.
func (e *Engine) Cancel(appointmentID uint, actor Actor) (*models.Appointment, []Event, error) {
	appointment, err := e.store.AppointmentByID(appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment.UserID != actor.UserID && !actor.isAdmin() {
		return nil, nil, Forbiddenf("you can only cancel your own appointments")
	}
	if appointment.Status == models.StatusCancelled {
		return nil, nil, Policyf("appointment is already cancelled")
	}
	if appointment.Status == models.StatusCompleted {
		return nil, nil, Policyf("cannot cancel completed appointments")
	}
	if err := e.checkNotice(appointment.StartTime, e.cfg.MinCancelHours, "cancelled"); err != nil {
		return nil, nil, err
	}

	if err := appointment.CanTransition(models.StatusCancelled); err != nil {
		return nil, nil, Policyf("%v", err)
	}
	appointment.Status = models.StatusCancelled
	if err := e.store.SaveAppointment(appointment); err != nil {
		return nil, nil, err
	}

	events := []Event{{Kind: EventBookingCancelled, Appointment: appointment}}
	return appointment, events, nil
}

// checkNotice enforces the minimum-notice policy. Exactly minHours before the
// start is allowed; anything less fails.
func (e *Engine) checkNotice(start time.Time, minHours int, action string) error {
	hoursUntil := start.Sub(e.now()).Hours()
	if hoursUntil < float64(minHours) {
		return Policyf("appointments can only be %s at least %d hours in advance", action, minHours)
	}
	return nil
}

// checkStaffWindow verifies [start, end) fits inside the staff member's
// availability window for that weekday. A missing window means the staff
// member is unconstrained that day.
func (e *Engine) checkStaffWindow(staff *models.Staff, start, end time.Time) error {
	window, err := e.store.Window(staff.ID, int(start.Weekday()))
	if err != nil {
		return err
	}
	if window == nil {
		return nil
	}
	open, closeAt, err := windowBounds(window, start)
	if err != nil {
		return Validationf("staff availability is misconfigured: %v", err)
	}
	if start.Before(open) || end.After(closeAt) {
		return Conflictf("%s is only available from %s to %s on this day",
			staff.Name, window.StartTime, window.EndTime)
	}
	return nil
}

// assignedStaffIDs returns the distinct staff involved in the appointment,
// falling back to the primary staff for legacy single-service rows.
func assignedStaffIDs(a *models.Appointment) []uint {
	seen := map[uint]bool{}
	var ids []uint
	for _, sa := range a.Services {
		if !seen[sa.StaffID] {
			seen[sa.StaffID] = true
			ids = append(ids, sa.StaffID)
		}
	}
	if len(ids) == 0 && a.StaffID != nil {
		ids = append(ids, *a.StaffID)
	}
	return ids
}
