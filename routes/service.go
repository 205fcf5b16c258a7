package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")

	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)

	admin := middleware.RequireRole(models.RoleAdmin)
	service.Post("/", middleware.Protected(), admin, controllers.CreateService)
	service.Put("/:id", middleware.Protected(), admin, controllers.UpdateService)
	service.Delete("/:id", middleware.Protected(), admin, controllers.DeleteService)
}
