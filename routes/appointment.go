package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())

	appointment.Post("/", controllers.CreateAppointment)
	appointment.Get("/my", controllers.GetMyAppointments)
	appointment.Get("/staff/my", middleware.RequireRole(models.RoleStaff), controllers.GetStaffSchedule)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Put("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Put("/:id/complete-service/:serviceId", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.CompleteService)
	appointment.Put("/:id/complete", middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.CompleteAppointment)
	appointment.Delete("/:id", controllers.CancelAppointment)
}
