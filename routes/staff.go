package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupStaffRoutes configures staff profiles and service assignment routes
func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/staff")

	staff.Get("/", controllers.GetAllStaff)
	staff.Get("/:id", controllers.GetStaff)

	admin := middleware.RequireRole(models.RoleAdmin)
	staff.Post("/", middleware.Protected(), admin, controllers.CreateStaff)
	staff.Put("/:id", middleware.Protected(), admin, controllers.UpdateStaff)
	staff.Delete("/:id", middleware.Protected(), admin, controllers.DeleteStaff)
	staff.Post("/:id/services/:serviceId", middleware.Protected(), admin, controllers.AssignService)
	staff.Delete("/:id/services/:serviceId", middleware.Protected(), admin, controllers.UnassignService)
}
