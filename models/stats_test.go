package models

import (
	"testing"
)

func TestComputeStats_EmptySnapshot(t *testing.T) {
	stats := ComputeStats(nil)
	if stats != (BookingStats{}) {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestComputeStats_CountsAndRevenue(t *testing.T) {
	bookings := []Booking{
		{Status: StatusPending, PaymentAmount: 500},
		{Status: StatusConfirmed, PaymentAmount: 350},
		{Status: StatusConfirmed, PaymentAmount: 150},
		{Status: StatusCompleted, PaymentAmount: 1000},
		{Status: StatusCancelled, PaymentAmount: 800},
	}

	stats := ComputeStats(bookings)

	if stats.Pending != 1 || stats.Confirmed != 2 || stats.Completed != 1 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Total != 5 {
		t.Fatalf("expected total 5, got %d", stats.Total)
	}
	// confirmed + completed only; pending and cancelled excluded
	if stats.Revenue != 1500 {
		t.Fatalf("expected revenue 1500, got %v", stats.Revenue)
	}
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	a := []Booking{
		{Status: StatusCompleted, PaymentAmount: 100},
		{Status: StatusPending},
		{Status: StatusConfirmed, PaymentAmount: 250},
	}
	b := []Booking{a[2], a[0], a[1]}

	if ComputeStats(a) != ComputeStats(b) {
		t.Fatalf("stats differ under reordering: %+v vs %+v", ComputeStats(a), ComputeStats(b))
	}
}

func TestComputeStats_ZeroAmountContributesNothing(t *testing.T) {
	stats := ComputeStats([]Booking{
		{Status: StatusConfirmed},
		{Status: StatusCompleted, PaymentAmount: 300},
	})
	if stats.Revenue != 300 {
		t.Fatalf("expected revenue 300, got %v", stats.Revenue)
	}
}
