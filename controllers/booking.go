package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/carwashph/booking-app/db"
	"github.com/carwashph/booking-app/models"
	"github.com/carwashph/booking-app/utils"
)

// GetAllBookings returns every booking, newest first. Admin only.
func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := db.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetMyBookings returns the authenticated customer's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns a booking by ID. Admins can read any booking,
// customers only their own.
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("userID").(uint)
	if role != "admin" && booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to view this booking",
		})
	}

	return c.JSON(booking)
}

type BookingInput struct {
	Service       string  `json:"service"`
	Vehicle       string  `json:"vehicle"`
	Plate         string  `json:"plate"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Location      string  `json:"location"`
	PaymentMethod string  `json:"payment_method"`
	PaymentAmount float64 `json:"payment_amount"`
}

// validateBooking checks the booking form before any store call. Returns an
// empty string when acceptable.
func validateBooking(input BookingInput) string {
	if input.Service == "" || input.Vehicle == "" || input.Plate == "" ||
		input.Date == "" || input.Time == "" || input.Location == "" ||
		input.PaymentMethod == "" || input.PaymentAmount == 0 {
		return "Please fill all fields including payment and location."
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return "Invalid payment method selected"
	}
	if !models.ValidLocation(input.Location) {
		return "Invalid carwash location selected"
	}
	return ""
}

// CreateBooking creates a booking for the authenticated customer. The price
// is copied from the selected catalog entry at creation time; later catalog
// changes never touch existing bookings. New bookings always start pending.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if msg := validateBooking(*input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	var service models.Service
	if db.DB.Where("name = ?", input.Service).First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service selected",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	booking := models.Booking{
		UserID:        user.ID,
		UserName:      user.Name,
		Service:       service.Name,
		Vehicle:       input.Vehicle,
		Plate:         input.Plate,
		Date:          input.Date,
		Time:          input.Time,
		Location:      input.Location,
		Price:         service.Price,
		Status:        models.StatusPending,
		PaymentMethod: input.PaymentMethod,
		PaymentAmount: input.PaymentAmount,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking. Please try again.",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// CancelBooking is the customer-side cancel: it removes the record from the
// store entirely. This is distinct from the admin "cancelled" transition,
// which keeps the row and only marks its status.
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to cancel this booking",
		})
	}

	if err := db.DB.Unscoped().Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking. Please try again.",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Booking cancelled successfully",
	})
}

// UpdateBookingStatus applies an admin status transition to a booking
func UpdateBookingStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := booking.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Failed to update booking",
			Error:   err.Error(),
		})
	}

	go notifyStatusChange(booking)

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Booking %s successfully", booking.Status),
		"booking": booking,
	})
}

// notifyStatusChange emails the booking owner about a status change.
// Best effort: delivery failures are logged and never fail the update.
func notifyStatusChange(booking models.Booking) {
	var user models.User
	if err := db.DB.First(&user, booking.UserID).Error; err != nil {
		log.Printf("Status notification skipped, owner of booking %d not found: %v", booking.ID, err)
		return
	}

	subject := fmt.Sprintf("Booking Update: %s - %s", booking.Service, booking.Status)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your carwash booking has been updated.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s at %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Thank you for choosing us.</p>
	`, user.Name, booking.Service, booking.Date, booking.Time, booking.Location, booking.Status)

	if err := utils.SendEmail(user.Email, subject, body); err != nil {
		log.Printf("Failed to send status notification for booking %d: %v", booking.ID, err)
	}
}
