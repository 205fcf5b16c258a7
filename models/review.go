package models

import (
	"gorm.io/gorm"
)

// Review is created once per (user, appointment, service), and only after the
// appointment is completed.
type Review struct {
	gorm.Model
	UserID        uint    `json:"user_id"`
	User          User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AppointmentID uint    `json:"appointment_id"`
	ServiceID     uint    `json:"service_id"`
	Service       Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StaffID       *uint   `json:"staff_id"`
	Staff         *Staff  `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Rating        int     `json:"rating"`
	Comment       string  `json:"comment"`
	StaffResponse string  `json:"staff_response"`
}

// HasExistingReview reports whether this customer already reviewed this
// service for this appointment.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("user_id = ? AND appointment_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.UserID, r.AppointmentID, r.ServiceID).
		Count(&count).Error
	return count > 0, err
}
