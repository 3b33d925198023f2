package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviceconnect/booking-backend/config"
	"github.com/serviceconnect/booking-backend/controllers"
	"github.com/serviceconnect/booking-backend/middleware"
)

// SetupCatalogRoutes configures the service catalog and registry routes
func SetupCatalogRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/services", controllers.GetAllServices)
	app.Get("/service-registry", controllers.GetServiceRegistry)

	app.Post("/services/:id/image", middleware.Protected(cfg.JWTSecret), controllers.UploadServiceImage)
	app.Post("/subservices/:id/image", middleware.Protected(cfg.JWTSecret), controllers.UploadSubserviceImage)
}
