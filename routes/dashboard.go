package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carwashph/booking-app/controllers"
	"github.com/carwashph/booking-app/middleware"
)

// SetupDashboardRoutes configures the admin dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/admin/dashboard", middleware.Protected(), middleware.RequireAdmin())

	dashboard.Get("/overview", controllers.GetDashboardOverview)
	dashboard.Get("/recent", controllers.GetRecentBookings)
	dashboard.Get("/calendar", controllers.GetCalendarMonth)
	dashboard.Get("/calendar/:date", controllers.GetCalendarDay)
}
