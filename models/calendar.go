package models

import (
	"fmt"
	"time"
)

// CalendarDay is one day of a month view with the bookings scheduled on it.
type CalendarDay struct {
	Day      int       `json:"day"`
	Date     string    `json:"date"` // YYYY-MM-DD
	Count    int       `json:"count"`
	Bookings []Booking `json:"bookings"`
}

// CalendarMonth is a month of bucketed bookings plus the weekday the month
// starts on (0 = Sunday), which the calendar grid needs for its leading gap.
type CalendarMonth struct {
	Year            int           `json:"year"`
	Month           time.Month    `json:"month"`
	StartingWeekday int           `json:"starting_weekday"`
	Days            []CalendarDay `json:"days"`
}

// parseDate splits a YYYY-MM-DD booking date into integer components.
// Bucketing compares these components directly rather than constructed
// timestamps, so a booking can never drift across a month boundary with
// the server's timezone.
func parseDate(s string) (year int, month time.Month, day int, ok bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, false
	}
	y, m, d := t.Date()
	return y, m, d, true
}

// DateKey formats a (year, month, day) triple as the YYYY-MM-DD form stored
// on bookings.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonth buckets bookings into the days of one calendar month. Bookings
// dated outside the month, or with a malformed date, appear in no bucket.
func BuildMonth(year int, month time.Month, bookings []Booking) CalendarMonth {
	days := DaysIn(year, month)
	view := CalendarMonth{
		Year:            year,
		Month:           month,
		StartingWeekday: int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()),
		Days:            make([]CalendarDay, days),
	}
	for i := range view.Days {
		view.Days[i] = CalendarDay{
			Day:      i + 1,
			Date:     DateKey(year, month, i+1),
			Bookings: []Booking{},
		}
	}
	for _, b := range bookings {
		y, m, d, ok := parseDate(b.Date)
		if !ok || y != year || m != month {
			continue
		}
		bucket := &view.Days[d-1]
		bucket.Bookings = append(bucket.Bookings, b)
		bucket.Count++
	}
	return view
}

// BookingsOn returns the bookings scheduled on a single calendar day.
func BookingsOn(year int, month time.Month, day int, bookings []Booking) []Booking {
	matched := []Booking{}
	for _, b := range bookings {
		y, m, d, ok := parseDate(b.Date)
		if ok && y == year && m == month && d == day {
			matched = append(matched, b)
		}
	}
	return matched
}

// PrevMonth steps one month back, rolling the year over at January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps one month forward, rolling the year over at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
