package models

import (
	"gorm.io/gorm"
)

// Service is a catalog entry. The catalog is read-only from the API's
// perspective; it is seeded at migration time and never mutated.
type Service struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
}
