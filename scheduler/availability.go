package scheduler

import (
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// WeeklySchedule returns the staff member's availability windows, ordered by
// weekday and start time.
func (e *Engine) WeeklySchedule(staffID uint) ([]models.StaffAvailability, error) {
	if _, err := e.store.StaffByID(staffID); err != nil {
		return nil, err
	}
	return e.store.WindowsForStaff(staffID)
}

// ValidateWindow checks a new or updated availability window against the
// staff member's existing windows. Windows on the same weekday must not
// overlap; touching edges are fine. excludeID skips the window being updated
// (zero skips nothing).
func ValidateWindow(existing []models.StaffAvailability, candidate *models.StaffAvailability, excludeID uint) error {
	if candidate.DayOfWeek < 0 || candidate.DayOfWeek > 6 {
		return Validationf("day_of_week must be 0-6 (Sunday-Saturday)")
	}
	if _, err := parseClock(candidate.StartTime); err != nil {
		return Validationf("invalid start_time: %v", err)
	}
	if _, err := parseClock(candidate.EndTime); err != nil {
		return Validationf("invalid end_time: %v", err)
	}
	if candidate.EndTime <= candidate.StartTime {
		return Validationf("end_time must be after start_time")
	}

	for _, w := range existing {
		if excludeID != 0 && w.ID == excludeID {
			continue
		}
		if w.DayOfWeek != candidate.DayOfWeek {
			continue
		}
		if clockOverlaps(candidate.StartTime, candidate.EndTime, w.StartTime, w.EndTime) {
			return Conflictf("overlapping schedule exists for this day")
		}
	}
	return nil
}
