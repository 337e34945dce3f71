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
	servicesCacheKey = "services:all"
	servicesCacheTTL = 10 * time.Minute
)

// GetAllServices returns the service catalog ordered by price ascending.
// The catalog never changes at runtime, so the list is served from Redis
// when a cache is configured.
func GetAllServices(c *fiber.Ctx) error {
	if redis.Enabled() {
		if cached, err := redis.Client.Get(redis.Ctx, servicesCacheKey).Result(); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}
	}

	var services []models.Service
	if err := db.DB.Order("price asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if redis.Enabled() {
		if payload, err := json.Marshal(services); err == nil {
			redis.Client.Set(redis.Ctx, servicesCacheKey, payload, servicesCacheTTL)
		}
	}

	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}
