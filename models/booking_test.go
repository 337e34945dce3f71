package models

import (
	"testing"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, c := range allowed {
		if !CanTransition(c.from, c.to) {
			t.Fatalf("expected %s -> %s to be allowed", c.from, c.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{StatusPending, StatusCompleted},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusConfirmed, StatusPending},
	}
	for _, c := range denied {
		if CanTransition(c.from, c.to) {
			t.Fatalf("expected %s -> %s to be rejected", c.from, c.to)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	// "paid" leaked into the original data set once; the enum stays closed
	for _, s := range []BookingStatus{"paid", "", "done"} {
		if ValidStatus(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{"GCash", "Cash", "Credit Card"} {
		if !ValidPaymentMethod(m) {
			t.Fatalf("expected %q to be accepted", m)
		}
	}
	if ValidPaymentMethod("Cheque") || ValidPaymentMethod("") {
		t.Fatal("unexpected payment method accepted")
	}
}

func TestValidLocation(t *testing.T) {
	for _, l := range Locations {
		if !ValidLocation(l) {
			t.Fatalf("expected %q to be accepted", l)
		}
	}
	if ValidLocation("East Branch") {
		t.Fatal("unknown branch accepted")
	}
}
