package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/middleware"
)

// SetupPaymentRoutes configures payment intent, verification and webhook routes
func SetupPaymentRoutes(app *fiber.App) {
	payment := app.Group("/payments")

	payment.Post("/create-intent", middleware.Protected(), controllers.CreatePaymentIntent)
	payment.Post("/verify", middleware.Protected(), controllers.VerifyPayment)

	// Gateways call this, not users.
	payment.Post("/webhook/:provider", controllers.PaymentWebhook)
}
