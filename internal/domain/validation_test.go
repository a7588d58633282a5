package domain

import (
	"testing"
	"time"
)

func TestHost(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://ndtv.com/india/story-123":      "ndtv.com",
		"https://thehindu.com:443/news/article": "thehindu.com",
		"not-a-url":                             "",
	}
	for raw, want := range cases {
		if got := Host(raw); got != want {
			t.Fatalf("Host(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRunClockToday(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+30*60)
	clock := RunClock{
		Now:      time.Date(2025, time.May, 24, 23, 45, 0, 0, ist),
		Location: ist,
	}

	want := time.Date(2025, time.May, 24, 0, 0, 0, 0, ist)
	if got := clock.Today(); !got.Equal(want) {
		t.Fatalf("Today() = %v, want %v", got, want)
	}
}

func TestRunClockTodayCrossesDateLine(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+30*60)
	// 20:00 UTC is already the next day in IST.
	clock := RunClock{
		Now:      time.Date(2025, time.May, 23, 20, 0, 0, 0, time.UTC),
		Location: ist,
	}

	want := time.Date(2025, time.May, 24, 0, 0, 0, 0, ist)
	if got := clock.Today(); !got.Equal(want) {
		t.Fatalf("Today() = %v, want %v", got, want)
	}
}
