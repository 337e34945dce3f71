package db

import (
	"fmt"
	"log"

	"github.com/carwashph/booking-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Service{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaultServices()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaultServices fills the read-only catalog. The API never creates or
// edits services, so missing entries are inserted here and existing ones are
// left alone.
func seedDefaultServices() {
	services := []models.Service{
		{Name: "Basic Wash", Description: "Exterior wash and dry", Price: 150, Icon: "🚿"},
		{Name: "Premium Wash", Description: "Exterior wash, interior vacuum and tire shine", Price: 350, Icon: "🧼"},
		{Name: "Full Detailing", Description: "Complete interior and exterior detailing", Price: 1500, Icon: "✨"},
		{Name: "Engine Wash", Description: "Engine bay degrease and rinse", Price: 500, Icon: "🔧"},
		{Name: "Ceramic Coating", Description: "Paint protection ceramic coat", Price: 5000, Icon: "🛡️"},
	}

	for _, service := range services {
		var existing models.Service
		if DB.Where("name = ?", service.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&service)
		}
	}
}
