package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "pending"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceCompleted  ServiceStatus = "completed"
)

// Appointment is a customer booking spanning one or more services. ServiceID
// and StaffID denormalize the first service/staff pair for single-service
// consumers; the authoritative breakdown lives in Services.
type Appointment struct {
	gorm.Model
	UserID    uint                `json:"user_id"`
	User      User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ServiceID *uint               `json:"service_id"`
	Service   *Service            `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StaffID   *uint               `json:"staff_id"`
	Staff     *Staff              `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Status    AppointmentStatus   `json:"status" gorm:"default:pending"`
	Notes     string              `json:"notes"`
	Services  []ServiceAssignment `json:"services,omitempty" gorm:"foreignKey:AppointmentID"`
	Payment   *Payment            `json:"payment,omitempty" gorm:"foreignKey:AppointmentID"`
}

// ServiceAssignment is one service+staff pairing within an appointment, with
// its own sub-interval and completion status. Sub-intervals are contiguous and
// non-overlapping, in the order the services were requested.
type ServiceAssignment struct {
	gorm.Model
	AppointmentID uint          `json:"appointment_id"`
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StaffID       uint          `json:"staff_id"`
	Staff         Staff         `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        ServiceStatus `json:"status" gorm:"default:pending"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// IsTerminal reports whether the appointment can no longer change state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanTransition validates a status change against the state machine:
// pending -> confirmed -> completed, with cancelled reachable from pending or
// confirmed only.
func (a *Appointment) CanTransition(to AppointmentStatus) error {
	switch a.Status {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCancelled && to != StatusCompleted {
			return fmt.Errorf("invalid transition from pending to %s", to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}
