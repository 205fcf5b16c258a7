package scheduler

import (
	"time"
)

// SlotInterval is the fixed granularity at which bookable start times are
// offered.
const SlotInterval = 30 * time.Minute

type Slot struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DisplayTime string    `json:"display_time"`
}

type SlotList struct {
	Slots   []Slot `json:"slots"`
	Message string `json:"message,omitempty"`
}

// GenerateSlots enumerates bookable start times for a staff+service+date.
// The walk starts at the weekday's window open time and advances in
// SlotInterval steps; each candidate runs for the service duration.
// Candidates that end after the window closes, start in the past, or overlap
// an existing non-cancelled appointment for the staff member are dropped.
// Nothing is cached: every call recomputes against current data.
func (e *Engine) GenerateSlots(staffID, serviceID uint, date time.Time) (*SlotList, error) {
	service, err := e.store.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := e.store.StaffByID(staffID); err != nil {
		return nil, err
	}

	now := e.now()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dayStart.Before(today) {
		return &SlotList{
			Slots:   []Slot{},
			Message: "Cannot book appointments in the past. Please select today or a future date.",
		}, nil
	}

	window, err := e.store.Window(staffID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if window == nil {
		// No configured hours for this weekday means nothing bookable here.
		return &SlotList{Slots: []Slot{}}, nil
	}

	open, closeAt, err := windowBounds(window, dayStart)
	if err != nil {
		return nil, Validationf("staff availability is misconfigured: %v", err)
	}

	busy, err := e.store.DayAppointments(staffID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := service.Duration()
	slots := []Slot{}
	for start := open; !start.Add(duration).After(closeAt); start = start.Add(SlotInterval) {
		if start.Before(now) {
			continue
		}
		end := start.Add(duration)

		conflict := false
		for _, appt := range busy {
			if Overlaps(start, end, appt.StartTime, appt.EndTime) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, Slot{
			StartTime:   start,
			EndTime:     end,
			DisplayTime: start.Format("03:04 PM"),
		})
	}

	result := &SlotList{Slots: slots}
	if len(slots) == 0 {
		result.Message = "All available slots for this date are booked. Please select a different date or time."
	}
	return result, nil
}
