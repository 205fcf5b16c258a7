package models

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Name           string              `json:"name"`
	Bio            string              `json:"bio"`
	Specialization string              `json:"specialization"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	IsActive       bool                `json:"is_active" gorm:"default:true"`
	Services       []Service           `json:"services,omitempty" gorm:"many2many:staff_services;"`
	Availability   []StaffAvailability `json:"availability,omitempty" gorm:"foreignKey:StaffID"`
}

// StaffService links a staff member to a service they are allowed to perform.
type StaffService struct {
	StaffID   uint `json:"staff_id" gorm:"primaryKey"`
	ServiceID uint `json:"service_id" gorm:"primaryKey"`
}
