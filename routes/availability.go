package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupAvailabilityRoutes configures availability windows and slot listing
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability")

	// Browsing is public so customers can pick a slot before logging in.
	availability.Get("/staff/:staffId", controllers.GetStaffAvailability)
	availability.Get("/available-slots", controllers.GetAvailableSlots)

	admin := middleware.RequireRole(models.RoleAdmin)
	availability.Post("/staff/:staffId", middleware.Protected(), admin, controllers.SetStaffAvailability)
	availability.Post("/staff/:staffId/schedule", middleware.Protected(), admin, controllers.AddStaffAvailability)
	availability.Put("/:id", middleware.Protected(), admin, controllers.UpdateAvailability)
	availability.Delete("/:id", middleware.Protected(), admin, controllers.DeleteAvailability)
}
