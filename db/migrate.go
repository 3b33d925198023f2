package db

import (
	"fmt"
	"log"

	"github.com/serviceconnect/booking-backend/models"
)

func Migrate() {
	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Register{},
		&models.OTP{},
		&models.Profile{},
		&models.Service{},
		&models.Subservice{},
		&models.EmployeeRegistration{},
		&models.ServiceRegistry{},
		&models.ServiceRequest{},
		&models.BookingList{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
