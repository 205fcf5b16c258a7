package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/scheduler"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

type createAppointmentInput struct {
	Services  []scheduler.ServiceRequest `json:"services"`
	ServiceID uint                       `json:"service_id"`
	StaffID   uint                       `json:"staff_id"`
	StartTime time.Time                  `json:"start_time"`
	Notes     string                     `json:"notes"`
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Description Book one or more services back to back starting at start_time
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body createAppointmentInput true "Booking request"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	input := new(createAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	requests := input.Services
	if len(requests) == 0 && input.ServiceID != 0 {
		// Single-service shorthand kept for older clients.
		requests = []scheduler.ServiceRequest{{ServiceID: input.ServiceID, StaffID: input.StaffID}}
	}

	userID := c.Locals("userID").(uint)
	appointment, events, err := engine.CreateBooking(userID, requests, input.StartTime, input.Notes)
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments godoc
// @Summary List the current customer's appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/my [get]
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	query := db.DB.
		Preload("Services").Preload("Services.Service").Preload("Services.Staff").
		Preload("Service").Preload("Staff").Preload("Payment").
		Where("user_id = ?", userID).
		Order("start_time DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetStaffSchedule godoc
// @Summary List appointments assigned to the current staff member
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 403 {object} utils.ErrorResponse
// @Router /appointments/staff/my [get]
func GetStaffSchedule(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	if actor.Role != models.RoleStaff || actor.StaffID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "No staff profile is linked to this account",
		})
	}

	var appointments []models.Appointment
	err := db.DB.
		Preload("Services").Preload("Services.Service").Preload("Services.Staff").
		Preload("Service").Preload("User").
		Where("staff_id = ? OR id IN (?)", actor.StaffID,
			db.DB.Model(&models.ServiceAssignment{}).Select("appointment_id").Where("staff_id = ?", actor.StaffID)).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var appointment models.Appointment
	if err := db.DB.
		Preload("Services").Preload("Services.Service").Preload("Services.Staff").
		Preload("Service").Preload("Staff").Preload("User").Preload("Payment").
		First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	actor := actorFromCtx(c)
	if appointment.UserID != actor.UserID && actor.Role == models.RoleCustomer {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only view your own appointments",
		})
	}
	return c.JSON(appointment)
}

type rescheduleInput struct {
	StartTime time.Time `json:"start_time"`
}

// RescheduleAppointment godoc
// @Summary Move an appointment to a new start time
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param body body rescheduleInput true "New start time"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/reschedule [put]
func RescheduleAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	input := new(rescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, events, err := engine.Reschedule(uint(id), input.StartTime, actorFromCtx(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.JSON(appointment)
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Description Marks the appointment cancelled; the record is kept
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func CancelAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	appointment, events, err := engine.Cancel(uint(id), actorFromCtx(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.JSON(appointment)
}

// CompleteService godoc
// @Summary Mark one service within an appointment as completed
// @Description When the last service completes, the appointment completes too
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Param serviceId path int true "Service ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/complete-service/{serviceId} [put]
func CompleteService(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}
	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
		})
	}

	appointment, events, err := engine.CompleteService(uint(id), uint(serviceID), actorFromCtx(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.JSON(appointment)
}

// CompleteAppointment godoc
// @Summary Mark an entire appointment as completed
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/complete [put]
func CompleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	appointment, events, err := engine.CompleteAll(uint(id), actorFromCtx(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.JSON(appointment)
}
