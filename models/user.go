package models

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	Phone        string        `json:"phone"`
	Role         string        `json:"role" gorm:"default:customer"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:UserID"`
	Reviews      []Review      `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
