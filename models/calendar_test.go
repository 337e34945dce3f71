package models

import (
	"testing"
	"time"
)

func TestBuildMonth_LeapYearFebruary(t *testing.T) {
	bookings := []Booking{
		{Service: "Basic Wash", Date: "2024-02-01"},
		{Service: "Premium Wash", Date: "2024-02-29"},
		{Service: "Detailing", Date: "2024-03-01"},
	}

	view := BuildMonth(2024, time.February, bookings)

	if len(view.Days) != 29 {
		t.Fatalf("expected 29 days in February 2024, got %d", len(view.Days))
	}
	if view.Days[0].Count != 1 || view.Days[0].Bookings[0].Service != "Basic Wash" {
		t.Fatalf("expected one booking on Feb 1, got %+v", view.Days[0])
	}
	if view.Days[28].Count != 1 || view.Days[28].Bookings[0].Service != "Premium Wash" {
		t.Fatalf("expected one booking on Feb 29, got %+v", view.Days[28])
	}
	for _, day := range view.Days[1:28] {
		if day.Count != 0 {
			t.Fatalf("expected empty bucket on %s, got %d bookings", day.Date, day.Count)
		}
	}
}

func TestBuildMonth_OtherMonthExcluded(t *testing.T) {
	bookings := []Booking{
		{Date: "2024-02-01"},
		{Date: "2024-02-29"},
	}
	view := BuildMonth(2024, time.March, bookings)
	for _, day := range view.Days {
		if day.Count != 0 {
			t.Fatalf("March 2024 should hold no February bookings, found %d on %s", day.Count, day.Date)
		}
	}
}

func TestBuildMonth_MalformedDateSkipped(t *testing.T) {
	view := BuildMonth(2024, time.February, []Booking{
		{Date: "not-a-date"},
		{Date: ""},
		{Date: "2024-2-1"},
	})
	for _, day := range view.Days {
		if day.Count != 0 {
			t.Fatalf("malformed dates must bucket nowhere, found booking on %s", day.Date)
		}
	}
}

func TestBuildMonth_DayMetadata(t *testing.T) {
	view := BuildMonth(2024, time.February, nil)
	if view.Days[0].Date != "2024-02-01" || view.Days[28].Date != "2024-02-29" {
		t.Fatalf("unexpected day keys: %s .. %s", view.Days[0].Date, view.Days[28].Date)
	}
	// 1 Feb 2024 was a Thursday
	if view.StartingWeekday != int(time.Thursday) {
		t.Fatalf("expected starting weekday %d, got %d", int(time.Thursday), view.StartingWeekday)
	}
}

func TestBookingsOn(t *testing.T) {
	bookings := []Booking{
		{Service: "Basic Wash", Date: "2024-02-29"},
		{Service: "Detailing", Date: "2024-02-28"},
	}
	got := BookingsOn(2024, time.February, 29, bookings)
	if len(got) != 1 || got[0].Service != "Basic Wash" {
		t.Fatalf("expected the Feb 29 booking, got %+v", got)
	}
	if len(BookingsOn(2024, time.February, 27, bookings)) != 0 {
		t.Fatalf("expected no bookings on Feb 27")
	}
}

func TestMonthNavigation_YearRollover(t *testing.T) {
	year, month := PrevMonth(2024, time.January)
	if year != 2023 || month != time.December {
		t.Fatalf("expected December 2023, got %v %d", month, year)
	}
	year, month = NextMonth(2023, time.December)
	if year != 2024 || month != time.January {
		t.Fatalf("expected January 2024, got %v %d", month, year)
	}
	year, month = PrevMonth(2024, time.June)
	if year != 2024 || month != time.May {
		t.Fatalf("expected May 2024, got %v %d", month, year)
	}
	year, month = NextMonth(2024, time.June)
	if year != 2024 || month != time.July {
		t.Fatalf("expected July 2024, got %v %d", month, year)
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Fatalf("DaysIn(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
