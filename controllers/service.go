package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

// GetAllServices godoc
// @Summary List services
// @Description Lists active services; pass all=true to include inactive ones
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [get]
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	query := db.DB.Order("name ASC")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService godoc
// @Summary Get a service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [get]
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Staff").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// CreateService godoc
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body models.Service true "Service"
// @Success 201 {object} models.Service
// @Failure 400 {object} utils.ErrorResponse
// @Router /services [post]
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if service.Name == "" || service.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name and a positive duration_minutes are required",
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.Service
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [put]
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	input := new(models.Service)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.DurationMinutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "duration_minutes must be positive",
		})
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"is_active":   input.IsActive,
	}
	if input.DurationMinutes > 0 {
		updates["duration_minutes"] = input.DurationMinutes
	}
	if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService godoc
// @Summary Delete a service
// @Tags services
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [delete]
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
