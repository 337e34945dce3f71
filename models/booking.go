package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentMethods accepted at booking time.
var PaymentMethods = []string{"GCash", "Cash", "Credit Card"}

// Locations lists the carwash branches a booking can be placed at.
var Locations = []string{
	"Main Branch - Saray Iligan City",
	"North Branch - San Miguel Iligan City",
	"South Branch - Tubod Iligan City",
}

type Booking struct {
	gorm.Model
	UserID        uint          `json:"user_id"`
	UserName      string        `json:"user_name"`
	Service       string        `json:"service"`
	Vehicle       string        `json:"vehicle"`
	Plate         string        `json:"plate"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"`
	Location      string        `json:"location"`
	Price         float64       `json:"price"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	PaymentAmount float64       `json:"payment_amount"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransition reports whether a booking may move from one status to another.
// Completed and cancelled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// UpdateStatus overwrites the booking's status after validating the
// transition. Only the status column is written; an invalid transition
// leaves the record untouched.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("unknown status %q", newStatus)
	}
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}

	if err := tx.Model(b).Update("status", newStatus).Error; err != nil {
		return err
	}
	b.Status = newStatus
	return nil
}

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ValidLocation reports whether loc is one of the branches.
func ValidLocation(loc string) bool {
	for _, l := range Locations {
		if loc == l {
			return true
		}
	}
	return false
}
