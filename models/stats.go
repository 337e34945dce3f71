package models

// BookingStats holds the per-status counts and revenue derived from a
// booking snapshot.
type BookingStats struct {
	Pending   int64   `json:"pending"`
	Confirmed int64   `json:"confirmed"`
	Completed int64   `json:"completed"`
	Cancelled int64   `json:"cancelled"`
	Total     int64   `json:"total"`
	Revenue   float64 `json:"revenue"`
}

// ComputeStats folds a booking snapshot into dashboard statistics. Revenue
// counts payment amounts of confirmed and completed bookings only; pending
// and cancelled bookings never contribute. The fold is order-independent
// and an empty snapshot yields all zeros.
func ComputeStats(bookings []Booking) BookingStats {
	var stats BookingStats
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		}
		if b.Status == StatusConfirmed || b.Status == StatusCompleted {
			stats.Revenue += b.PaymentAmount
		}
	}
	stats.Total = int64(len(bookings))
	return stats
}
