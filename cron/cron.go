package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
)

// StartCronJobs initializes and starts the cron scheduler for OTP housekeeping
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Expired codes are already unusable; this only stops the table growing
	_, err := c.AddFunc("@hourly", purgeExpiredOTPs)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for OTP cleanup")
}

// purgeExpiredOTPs deletes OTP rows past their validity window
func purgeExpiredOTPs() {
	cutoff := time.Now().Add(-models.OTPValidity)

	result := db.DB.Where("created_at < ?", cutoff).Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("Error purging expired OTPs: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired OTP rows", result.RowsAffected)
	}
}
