package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/carwashph/booking-app/db"
	"github.com/carwashph/booking-app/models"
	"github.com/carwashph/booking-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every morning at 8:00 to remind customers booked for the next day
	_, err := c.AddFunc("0 8 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
}

// sendBookingReminders emails customers with confirmed bookings for tomorrow
func sendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)
	y, m, d := tomorrow.Date()
	dateKey := models.DateKey(y, m, d)

	var bookings []models.Booking
	err := db.DB.
		Where("status = ? AND date = ?", models.StatusConfirmed, dateKey).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	log.Printf("Found %d bookings for reminders on %s", len(bookings), dateKey)

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to user %d", booking.ID, booking.UserID)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	var user models.User
	if err := db.DB.First(&user, booking.UserID).Error; err != nil {
		return fmt.Errorf("booking owner not found: %v", err)
	}

	subject := fmt.Sprintf("Reminder: Carwash Booking Tomorrow - %s", booking.Service)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your carwash booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Vehicle:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s at %s</li>
			<li><strong>Location:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, you can do so from your dashboard.</p>
		<p>Best regards,</p>
		<p>Your Carwash Team</p>
	`, user.Name, booking.Service, booking.Vehicle, booking.Plate,
		booking.Date, booking.Time, booking.Location)

	return utils.SendEmail(user.Email, subject, body)
}
