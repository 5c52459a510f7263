package utils

import (
	"testing"
	"time"
)

func TestStartOfMonth(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, time.March, 17, 14, 30, 0, 0, loc)

	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, loc).Unix()
	if got := StartOfMonth(now); got != want {
		t.Fatalf("StartOfMonth = %d, want %d", got, want)
	}
}

func TestStartOfLastMonthCrossesYear(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.January, 5, 8, 0, 0, 0, loc)

	want := time.Date(2025, time.December, 1, 0, 0, 0, 0, loc).Unix()
	if got := StartOfLastMonth(now); got != want {
		t.Fatalf("StartOfLastMonth = %d, want %d", got, want)
	}
}

func TestMonthWindowsAbut(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// Last month's window ends exactly where this month's begins.
	if StartOfLastMonth(now) >= StartOfMonth(now) {
		t.Fatal("month windows out of order")
	}
}
