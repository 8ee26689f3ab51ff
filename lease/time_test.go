package lease_test

import (
	"testing"
	"time"

	"github.com/lucasw9999/carleasetracker/lease"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		from lease.Date
		to   lease.Date
		want int
	}{
		{"same day", d(2025, time.August, 4), d(2025, time.August, 4), 0},
		{"six days", d(2025, time.August, 4), d(2025, time.August, 10), 6},
		{"across leap day", d(2024, time.February, 28), d(2024, time.March, 1), 2},
		{"reversed is negative", d(2025, time.August, 10), d(2025, time.August, 4), -6},
		{"full non-leap span", d(2024, time.August, 4), d(2027, time.August, 4), 1095},
		{"full span containing leap day", d(2025, time.August, 4), d(2028, time.August, 4), 1096},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lease.DaysBetween(tc.from, tc.to); got != tc.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDate_AddYears(t *testing.T) {
	cases := []struct {
		name  string
		start lease.Date
		years int
		want  lease.Date
	}{
		{"plain anniversary", d(2025, time.August, 4), 3, d(2028, time.August, 4)},
		{"leap start clamps to feb 28", d(2024, time.February, 29), 1, d(2025, time.February, 28)},
		{"leap start clamps across three years", d(2024, time.February, 29), 3, d(2027, time.February, 28)},
		{"leap start keeps feb 29 on leap target", d(2024, time.February, 29), 4, d(2028, time.February, 29)},
		{"century non-leap clamps", d(2096, time.February, 29), 4, d(2100, time.February, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.AddYears(tc.years); !got.Equal(tc.want) {
				t.Errorf("%s.AddYears(%d) = %s, want %s", tc.start, tc.years, got, tc.want)
			}
		})
	}
}

func TestDate_IgnoresTimeOfDay(t *testing.T) {
	morning := lease.Date{Time: time.Date(2025, time.August, 4, 8, 30, 0, 0, time.UTC)}
	evening := lease.Date{Time: time.Date(2025, time.August, 4, 23, 59, 0, 0, time.UTC)}

	if !morning.Equal(evening) {
		t.Error("dates on the same calendar day should compare equal")
	}
	if lease.DaysBetween(morning, evening) != 0 {
		t.Error("same calendar day should be zero days apart")
	}
}

func TestParseDate(t *testing.T) {
	got, err := lease.ParseDate("2025-08-04")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !got.Equal(d(2025, time.August, 4)) {
		t.Errorf("ParseDate = %s, want 2025-08-04", got)
	}

	if _, err := lease.ParseDate("08/04/2025"); err == nil {
		t.Error("ParseDate accepted a non-ISO format")
	}
}
