package models

import (
	"time"
)

// Admin is a staff credential record. Admins live in their own table and
// log in through a separate endpoint; they never own bookings.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
