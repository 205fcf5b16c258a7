package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
	"github.com/UDAVALAPATISURESH/backend-spn/utils"
)

// ConfirmAppointment godoc
// @Summary Confirm a pending appointment (payment must be verified first)
// @Tags admin
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /admin/appointments/{id}/confirm [put]
func ConfirmAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	appointment, events, err := engine.Confirm(uint(id), actorFromCtx(c))
	if err != nil {
		return respondEngineError(c, err)
	}

	dispatch(events)
	return c.JSON(appointment)
}

// AdminVerifyPayment triggers a provider-side verification for an
// appointment's payment, for when the customer's callback never arrived.
func AdminVerifyPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var payment models.Payment
	if err := db.DB.Where("appointment_id = ?", id).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "No payment found for this appointment",
		})
	}
	if payment.Status == models.PaymentPaid {
		return c.JSON(payment)
	}

	paid, err := settlePayment(&payment)
	if err != nil {
		return respondEngineError(c, err)
	}
	if !paid {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Payment is not completed yet",
		})
	}
	return c.JSON(payment)
}

// GetAllAppointments godoc
// @Summary List all appointments with optional status/date filters
// @Tags admin
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.
		Preload("Services").Preload("Services.Service").Preload("Services.Staff").
		Preload("Service").Preload("Staff").Preload("User").Preload("Payment").
		Order("start_time DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "date must be in YYYY-MM-DD format",
			})
		}
		query = query.Where("start_time >= ? AND start_time < ?", date, date.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetDashboardSummary godoc
// @Summary Booking counts by status plus current-month revenue
// @Tags admin
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/summary [get]
func GetDashboardSummary(c *fiber.Ctx) error {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var counts []statusCount
	if err := db.DB.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch summary",
			Error:   err.Error(),
		})
	}

	byStatus := fiber.Map{}
	var total int64
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
		total += sc.Count
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthRevenue float64
	if err := db.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND updated_at >= ?", models.PaymentPaid, monthStart).
		Scan(&monthRevenue).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch revenue",
			Error:   err.Error(),
		})
	}

	var upcoming int64
	db.DB.Model(&models.Appointment{}).
		Where("status IN ? AND start_time > ?",
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}, now).
		Count(&upcoming)

	return c.JSON(fiber.Map{
		"total_appointments": total,
		"by_status":          byStatus,
		"upcoming":           upcoming,
		"month_revenue":      monthRevenue,
	})
}
