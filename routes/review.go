package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// SetupReviewRoutes configures review browsing, creation and staff responses
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews")

	review.Get("/", controllers.GetReviews)
	review.Get("/:id", controllers.GetReview)
	review.Post("/", middleware.Protected(), controllers.CreateReview)
	review.Put("/:id/response", middleware.Protected(),
		middleware.RequireRole(models.RoleStaff, models.RoleAdmin), controllers.RespondToReview)
}
