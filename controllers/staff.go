package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

// GetAllStaff lists staff members. Inactive staff are included only with
// all=true so the public listing stays bookable-only.
func GetAllStaff(c *fiber.Ctx) error {
	var staff []models.Staff
	query := db.DB.Preload("Services").Order("name ASC")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch staff",
			Error:   err.Error(),
		})
	}
	return c.JSON(staff)
}

// GetStaff returns one staff member with their services and availability.
func GetStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.Staff
	if err := db.DB.Preload("Services").Preload("Availability").First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(staff)
}

// CreateStaff creates a staff profile.
func CreateStaff(c *fiber.Ctx) error {
	staff := new(models.Staff)
	if err := c.BodyParser(staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if staff.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name is required",
		})
	}

	if err := db.DB.Create(staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create staff",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

// UpdateStaff updates a staff profile.
func UpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.Staff
	if err := db.DB.First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
		})
	}

	input := new(models.Staff)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{
		"name":           input.Name,
		"bio":            input.Bio,
		"specialization": input.Specialization,
		"email":          input.Email,
		"phone":          input.Phone,
		"is_active":      input.IsActive,
	}
	if err := db.DB.Model(&staff).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update staff",
			Error:   err.Error(),
		})
	}
	return c.JSON(staff)
}

// DeleteStaff removes a staff profile. Existing appointments keep their
// denormalized staff reference.
func DeleteStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	var staff models.Staff
	if err := db.DB.First(&staff, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
		})
	}
	if err := db.DB.Delete(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete staff",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignService links a service to a staff member so they can be booked for
// it.
func AssignService(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff ID",
		})
	}
	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
		})
	}

	var staff models.Staff
	if err := db.DB.First(&staff, staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff not found",
		})
	}
	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	var count int64
	db.DB.Model(&models.StaffService{}).
		Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Service is already assigned to this staff member",
		})
	}

	link := models.StaffService{StaffID: uint(staffID), ServiceID: uint(serviceID)}
	if err := db.DB.Create(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// UnassignService removes a staff<->service link. Existing appointments are
// unaffected.
func UnassignService(c *fiber.Ctx) error {
	staffID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff ID",
		})
	}
	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
		})
	}

	result := db.DB.Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Delete(&models.StaffService{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to unassign service",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service is not assigned to this staff member",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
