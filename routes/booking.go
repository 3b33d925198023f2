package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviceconnect/booking-backend/config"
	"github.com/serviceconnect/booking-backend/controllers"
	"github.com/serviceconnect/booking-backend/middleware"
)

// SetupBookingRoutes configures service request and booking list routes
func SetupBookingRoutes(app *fiber.App, cfg *config.Config) {
	requests := app.Group("/service-requests", middleware.Protected(cfg.JWTSecret))
	requests.Get("/", controllers.GetAllServiceRequests)
	requests.Get("/:id", controllers.GetServiceRequest)
	requests.Post("/", controllers.CreateServiceRequest)
	requests.Put("/:id", controllers.UpdateServiceRequest)
	requests.Patch("/:id", controllers.PatchServiceRequest)
	requests.Delete("/:id", controllers.DeleteServiceRequest)

	app.Get("/bookings", controllers.GetBookings)
}
