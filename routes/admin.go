package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupAdminRoutes configures the admin dashboard routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/appointments", controllers.GetAllAppointments)
	admin.Put("/appointments/:id/confirm", controllers.ConfirmAppointment)
	admin.Post("/appointments/:id/verify-payment", controllers.AdminVerifyPayment)
	admin.Get("/summary", controllers.GetDashboardSummary)
}
