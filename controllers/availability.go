package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/scheduler"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

// GetStaffAvailability lists the weekly availability windows of a staff member.
func GetStaffAvailability(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff ID",
		})
	}

	windows, err := engine.WeeklySchedule(uint(staffID))
	if err != nil {
		return respondEngineError(c, err)
	}
	return c.JSON(windows)
}

// SetStaffAvailability replaces the staff member's entire weekly schedule.
// Every window is validated against the others before anything is written.
func SetStaffAvailability(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff ID",
		})
	}

	var staff models.Staff
	if err := db.DB.First(&staff, staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
		})
	}

	var windows []models.StaffAvailability
	if err := c.BodyParser(&windows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	for i := range windows {
		windows[i].ID = 0
		windows[i].StaffID = uint(staffID)
		if err := scheduler.ValidateWindow(windows[:i], &windows[i], 0); err != nil {
			return respondEngineError(c, err)
		}
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&models.StaffAvailability{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(windows)
}

// AddStaffAvailability adds one window to the staff member's schedule,
// rejecting overlaps with existing windows on the same day.
func AddStaffAvailability(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("staffId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff ID",
		})
	}

	var staff models.Staff
	if err := db.DB.First(&staff, staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
		})
	}

	window := new(models.StaffAvailability)
	if err := c.BodyParser(window); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	window.ID = 0
	window.StaffID = uint(staffID)

	var existing []models.StaffAvailability
	if err := db.DB.Where("staff_id = ?", staffID).Find(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	if err := scheduler.ValidateWindow(existing, window, 0); err != nil {
		return respondEngineError(c, err)
	}

	if err := db.DB.Create(window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(window)
}

// UpdateAvailability modifies one window, overlap-checked against the staff
// member's other windows.
func UpdateAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid availability ID",
		})
	}

	var window models.StaffAvailability
	if err := db.DB.First(&window, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability window not found",
		})
	}

	input := new(models.StaffAvailability)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	window.DayOfWeek = input.DayOfWeek
	window.StartTime = input.StartTime
	window.EndTime = input.EndTime

	var existing []models.StaffAvailability
	if err := db.DB.Where("staff_id = ?", window.StaffID).Find(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	if err := scheduler.ValidateWindow(existing, &window, window.ID); err != nil {
		return respondEngineError(c, err)
	}

	if err := db.DB.Save(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(window)
}

// DeleteAvailability removes one window.
func DeleteAvailability(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid availability ID",
		})
	}

	var window models.StaffAvailability
	if err := db.DB.First(&window, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Availability window not found",
		})
	}
	if err := db.DB.Delete(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete availability",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAvailableSlots godoc
// @Summary List bookable start times for a staff member, service and date
// @Tags availability
// @Produce json
// @Param staff_id query int true "Staff ID"
// @Param service_id query int true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} scheduler.SlotList
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /availability/available-slots [get]
func GetAvailableSlots(c *fiber.Ctx) error {
	staffID := c.QueryInt("staff_id", c.QueryInt("staffId"))
	serviceID := c.QueryInt("service_id", c.QueryInt("serviceId"))
	dateStr := c.Query("date")
	if staffID <= 0 || serviceID <= 0 || dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "staff_id, service_id and date are required",
		})
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	slots, err := engine.GenerateSlots(uint(staffID), uint(serviceID), date)
	if err != nil {
		return respondEngineError(c, err)
	}
	return c.JSON(slots)
}
