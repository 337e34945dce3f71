package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carwashph/booking-app/db"
	"github.com/carwashph/booking-app/models"
	"github.com/carwashph/booking-app/redis"
)

const (
	overviewCacheKey = "dashboard:overview"
	overviewCacheTTL = 30 * time.Second
)

// GetDashboardOverview returns per-status counts, total and revenue derived
// from the current booking snapshot
func GetDashboardOverview(c *fiber.Ctx) error {
	if redis.Enabled() {
		if cached, err := redis.Client.Get(redis.Ctx, overviewCacheKey).Result(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	var bookings []models.Booking
	if err := db.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stats := models.ComputeStats(bookings)

	response := fiber.Map{
		"stats":        stats,
		"last_updated": time.Now(),
	}

	if redis.Enabled() {
		if payload, err := json.Marshal(response); err == nil {
			redis.Client.Set(redis.Ctx, overviewCacheKey, payload, overviewCacheTTL)
		}
	}

	return c.JSON(response)
}

// GetRecentBookings returns the most recent bookings
func GetRecentBookings(c *fiber.Ctx) error {
	limit := 5 // Default limit
	if c.Query("limit") != "" {
		parsedLimit := c.QueryInt("limit")
		if parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	if err := db.DB.Order("created_at desc").Limit(limit).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(bookings)
}

// GetCalendarMonth returns one month of bookings bucketed by calendar day.
// Defaults to the current month; ?year= and ?month= select another one.
func GetCalendarMonth(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	monthNum := c.QueryInt("month", int(now.Month()))
	if monthNum < 1 || monthNum > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "month must be between 1 and 12",
		})
	}
	month := time.Month(monthNum)

	var bookings []models.Booking
	if err := db.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view := models.BuildMonth(year, month, bookings)

	prevYear, prevMonth := models.PrevMonth(year, month)
	nextYear, nextMonth := models.NextMonth(year, month)

	return c.JSON(fiber.Map{
		"calendar": view,
		"prev":     fiber.Map{"year": prevYear, "month": int(prevMonth)},
		"next":     fiber.Map{"year": nextYear, "month": int(nextMonth)},
	})
}

// GetCalendarDay returns the bookings scheduled on one date (YYYY-MM-DD)
func GetCalendarDay(c *fiber.Ctx) error {
	date := c.Params("date")
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date must be in YYYY-MM-DD form",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("date = ?", date).Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	y, m, d := day.Date()
	return c.JSON(fiber.Map{
		"date":     models.DateKey(y, m, d),
		"count":    len(bookings),
		"bookings": bookings,
	})
}
