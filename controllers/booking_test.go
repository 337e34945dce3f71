package controllers

import (
	"testing"

	"github.com/carwashph/booking-app/models"
)

func fullBookingInput() BookingInput {
	return BookingInput{
		Service:       "Basic Wash",
		Vehicle:       "Toyota Vios",
		Plate:         "ABC 1234",
		Date:          "2024-02-29",
		Time:          "10:30",
		Location:      models.Locations[0],
		PaymentMethod: "GCash",
		PaymentAmount: 150,
	}
}

func TestValidateBooking(t *testing.T) {
	if msg := validateBooking(fullBookingInput()); msg != "" {
		t.Fatalf("expected valid input, got %q", msg)
	}

	missing := fullBookingInput()
	missing.Location = ""
	if msg := validateBooking(missing); msg != "Please fill all fields including payment and location." {
		t.Fatalf("expected missing-field error, got %q", msg)
	}

	badMethod := fullBookingInput()
	badMethod.PaymentMethod = "Barter"
	if msg := validateBooking(badMethod); msg != "Invalid payment method selected" {
		t.Fatalf("expected payment-method error, got %q", msg)
	}

	badBranch := fullBookingInput()
	badBranch.Location = "East Branch - Nowhere"
	if msg := validateBooking(badBranch); msg != "Invalid carwash location selected" {
		t.Fatalf("expected location error, got %q", msg)
	}

	noAmount := fullBookingInput()
	noAmount.PaymentAmount = 0
	if msg := validateBooking(noAmount); msg == "" {
		t.Fatal("expected zero payment amount to be rejected")
	}
}
