package scheduler

import (
	"errors"
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"gorm.io/gorm"
)

// GormStore is the production Store backed by the shared *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("service %d not found", id)
		}
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) StaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("staff %d not found", id)
		}
		return nil, err
	}
	return &staff, nil
}

func (s *GormStore) StaffCanPerform(staffID, serviceID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.StaffService{}).
		Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) Window(staffID uint, weekday int) (*models.StaffAvailability, error) {
	var window models.StaffAvailability
	err := s.db.Where("staff_id = ? AND day_of_week = ?", staffID, weekday).
		Order("start_time asc").
		First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (s *GormStore) WindowsForStaff(staffID uint) ([]models.StaffAvailability, error) {
	var windows []models.StaffAvailability
	err := s.db.Where("staff_id = ?", staffID).
		Order("day_of_week asc, start_time asc").
		Find(&windows).Error
	return windows, err
}

func (s *GormStore) HasConflict(staffID uint, start, end time.Time, excludeAppointmentID uint) (bool, error) {
	query := s.db.Model(&models.Appointment{}).
		Where("staff_id = ?", staffID).
		Where("status != ?", models.StatusCancelled).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeAppointmentID != 0 {
		query = query.Where("id != ?", excludeAppointmentID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	// A staff member may also be booked through an assignment on an
	// appointment whose primary staff is someone else.
	assignQuery := s.db.Model(&models.ServiceAssignment{}).
		Joins("JOIN appointments ON appointments.id = service_assignments.appointment_id").
		Where("service_assignments.staff_id = ?", staffID).
		Where("appointments.status != ?", models.StatusCancelled).
		Where("appointments.start_time < ? AND appointments.end_time > ?", end, start)
	if excludeAppointmentID != 0 {
		assignQuery = assignQuery.Where("appointments.id != ?", excludeAppointmentID)
	}
	if err := assignQuery.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) DayAppointments(staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.
		Where("status != ?", models.StatusCancelled).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Where("staff_id = ? OR id IN (?)",
			staffID,
			s.db.Model(&models.ServiceAssignment{}).
				Select("appointment_id").
				Where("staff_id = ?", staffID),
		).
		Order("start_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *GormStore) AppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.
		Preload("Services").
		Preload("Services.Service").
		Preload("Services.Staff").
		Preload("Service").
		Preload("Staff").
		Preload("User").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("appointment %d not found", id)
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *GormStore) PaymentByAppointment(appointmentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (s *GormStore) CreateAppointment(a *models.Appointment) error {
	// gorm creates the appointment and its assignments in one transaction.
	return s.db.Create(a).Error
}

func (s *GormStore) SaveAppointment(a *models.Appointment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Appointment{}).Where("id = ?", a.ID).
			Updates(map[string]any{
				"start_time": a.StartTime,
				"end_time":   a.EndTime,
				"status":     a.Status,
				"notes":      a.Notes,
			}).Error; err != nil {
			return err
		}
		for i := range a.Services {
			sa := &a.Services[i]
			if err := tx.Model(&models.ServiceAssignment{}).Where("id = ?", sa.ID).
				Updates(map[string]any{
					"start_time": sa.StartTime,
					"end_time":   sa.EndTime,
					"status":     sa.Status,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) SaveAssignment(sa *models.ServiceAssignment) error {
	return s.db.Model(&models.ServiceAssignment{}).Where("id = ?", sa.ID).
		Updates(map[string]any{
			"start_time": sa.StartTime,
			"end_time":   sa.EndTime,
			"status":     sa.Status,
		}).Error
}

func (s *GormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
