package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/controllers"
	"github.com/UDAVALAPATISURESH/backend-spn/cron"
	"github.com/UDAVALAPATISURESH/backend-spn/db"
	"github.com/UDAVALAPATISURESH/backend-spn/notify"
	"github.com/UDAVALAPATISURESH/backend-spn/payments"
	"github.com/UDAVALAPATISURESH/backend-spn/redis"
	"github.com/UDAVALAPATISURESH/backend-spn/routes"
	"github.com/UDAVALAPATISURESH/backend-spn/scheduler"
)

func main() {
	cfg := config.Load()

	db.Init(cfg)
	db.Migrate()
	redis.InitRedis(cfg)

	engine := scheduler.NewEngine(scheduler.NewStore(db.DB), cfg)
	registry := payments.NewRegistry(cfg)
	notifier := notify.NewMailer(cfg, notify.NewSMSSender(cfg))
	controllers.Init(engine, registry, notifier)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Salon booking API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupReviewRoutes(app)

	cron.StartCronJobs(notifier)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
