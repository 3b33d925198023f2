package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/serviceconnect/booking-backend/config"
	"github.com/serviceconnect/booking-backend/controllers"
	"github.com/serviceconnect/booking-backend/cron"
	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/redis"
	"github.com/serviceconnect/booking-backend/routes"
	"github.com/serviceconnect/booking-backend/utils"
)

func main() {
	cfg := config.Load()
	db.Init(cfg)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Seed()
			return
		}
	}

	redis.Init(cfg)

	mailer := utils.NewMailer(cfg)

	var imageUploader *utils.Uploader
	if cfg.CloudinaryCloudName != "" {
		var err error
		imageUploader, err = utils.NewUploader(cfg)
		if err != nil {
			log.Fatal("Failed to initialize image uploader: ", err)
		}
	} else {
		log.Println("Warning: Cloudinary is not configured, image uploads are disabled")
	}

	controllers.Init(cfg, mailer, imageUploader)

	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app, cfg)
	routes.SetupCatalogRoutes(app, cfg)
	routes.SetupBookingRoutes(app, cfg)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
