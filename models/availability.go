package models

import (
	"gorm.io/gorm"
)

// StaffAvailability is one open/close window for a staff member on a weekday
// (0 = Sunday ... 6 = Saturday). Times are "HH:MM" in the salon's local time.
// A staff member with no window for a weekday is treated as unconstrained for
// booking but produces no bookable slots.
type StaffAvailability struct {
	gorm.Model
	StaffID   uint   `json:"staff_id"`
	Staff     Staff  `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
