package db

import (
	"fmt"
	"log"

	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.StaffService{},
		&models.StaffAvailability{},
		&models.Appointment{},
		&models.ServiceAssignment{},
		&models.Payment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
