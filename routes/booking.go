package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carwashph/booking-app/controllers"
	"github.com/carwashph/booking-app/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())

	booking.Get("/", middleware.RequireAdmin(), controllers.GetAllBookings)
	booking.Get("/me", controllers.GetMyBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", controllers.CreateBooking)
	booking.Delete("/:id", controllers.CancelBooking)
	booking.Patch("/:id/status", middleware.RequireAdmin(), controllers.UpdateBookingStatus)
}
