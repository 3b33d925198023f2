package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviceconnect/booking-backend/config"
	"github.com/serviceconnect/booking-backend/controllers"
	"github.com/serviceconnect/booking-backend/middleware"
)

// SetupAuthRoutes configures registration, login, OTP, token and profile routes
func SetupAuthRoutes(app *fiber.App, cfg *config.Config) {
	// Public routes
	app.Post("/register", controllers.Register)
	app.Post("/login", controllers.Login)
	app.Post("/verify-otp", controllers.VerifyOTP)
	app.Post("/token", controllers.ObtainToken)
	app.Post("/token/refresh", controllers.RefreshToken)

	// Protected routes
	app.Post("/logout", middleware.Protected(cfg.JWTSecret), controllers.Logout)
	app.Delete("/account", middleware.Protected(cfg.JWTSecret), controllers.DeleteAccount)

	profile := app.Group("/profile", middleware.Protected(cfg.JWTSecret))
	profile.Get("/", controllers.GetProfile)
	profile.Post("/", controllers.CreateProfile)
	profile.Put("/", controllers.UpdateProfile)
	profile.Patch("/", controllers.PatchProfile)
	profile.Delete("/", controllers.DeleteProfile)
}
