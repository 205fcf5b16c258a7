package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

// GetReviews lists reviews, optionally filtered by service or staff.
func GetReviews(c *fiber.Ctx) error {
	query := db.DB.Preload("User").Preload("Service").Preload("Staff").
		Order("created_at DESC")
	if serviceID := c.QueryInt("service_id"); serviceID > 0 {
		query = query.Where("service_id = ?", serviceID)
	}
	if staffID := c.QueryInt("staff_id"); staffID > 0 {
		query = query.Where("staff_id = ?", staffID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// GetReview returns one review.
func GetReview(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if err := db.DB.Preload("User").Preload("Service").Preload("Staff").
		First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Review not found",
		})
	}
	return c.JSON(review)
}

type createReviewInput struct {
	AppointmentID uint   `json:"appointment_id"`
	ServiceID     uint   `json:"service_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// CreateReview lets a customer review one service from a completed
// appointment of theirs, once.
func CreateReview(c *fiber.Ctx) error {
	input := new(createReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "rating must be between 1 and 5",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Services").First(&appointment, input.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	userID := c.Locals("userID").(uint)
	if appointment.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You can only review your own appointments",
		})
	}
	if appointment.Status != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Only completed appointments can be reviewed",
		})
	}

	var staffID *uint
	found := false
	for _, sa := range appointment.Services {
		if sa.ServiceID == input.ServiceID {
			found = true
			id := sa.StaffID
			staffID = &id
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "This service was not part of the appointment",
		})
	}

	review := models.Review{
		UserID:        userID,
		AppointmentID: input.AppointmentID,
		ServiceID:     input.ServiceID,
		StaffID:       staffID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "You have already reviewed this service for this appointment",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

type reviewResponseInput struct {
	Response string `json:"response"`
}

// RespondToReview lets the reviewed staff member (or an admin) attach a
// response to a review.
func RespondToReview(c *fiber.Ctx) error {
	id := c.Params("id")
	var review models.Review
	if err := db.DB.First(&review, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Review not found",
		})
	}

	actor := actorFromCtx(c)
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleStaff:
		if review.StaffID == nil || actor.StaffID == 0 || *review.StaffID != actor.StaffID {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "You can only respond to reviews of your own services",
			})
		}
	default:
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Only staff members can respond to reviews",
		})
	}

	input := new(reviewResponseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "response is required",
		})
	}

	review.StaffResponse = input.Response
	if err := db.DB.Save(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save response",
			Error:   err.Error(),
		})
	}
	return c.JSON(review)
}
