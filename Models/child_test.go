package Models

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name string
		dob  string
		now  string
		want int
	}{
		{"newborn", "2026-08-01", "2026-08-28", 0},
		{"one month exact", "2026-07-28", "2026-08-28", 1},
		{"day before the month turns", "2026-07-28", "2026-08-27", 0},
		{"one year", "2025-08-28", "2026-08-28", 12},
		{"three years", "2023-08-28", "2026-08-28", 36},
		{"year boundary", "2025-12-15", "2026-01-20", 1},
		{"year boundary short", "2025-12-15", "2026-01-10", 0},
		{"twelve years", "2014-08-28", "2026-08-28", 144},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsBetween(date(tc.dob), date(tc.now)); got != tc.want {
				t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tc.dob, tc.now, got, tc.want)
			}
		})
	}
}

func TestComputeAge(t *testing.T) {
	child := Child{DateOfBirth: "2024-02-10"}
	if err := child.ComputeAge(date("2026-08-28")); err != nil {
		t.Fatal(err)
	}
	if child.AgeInMonths != 30 {
		t.Errorf("AgeInMonths = %d, want 30", child.AgeInMonths)
	}
}

func TestComputeAgeRejectsBadInput(t *testing.T) {
	child := Child{DateOfBirth: "10/02/2024"}
	if err := child.ComputeAge(date("2026-08-28")); err == nil {
		t.Error("expected an error for a malformed date of birth")
	}

	child = Child{DateOfBirth: "2030-01-01"}
	if err := child.ComputeAge(date("2026-08-28")); err == nil {
		t.Error("expected an error for a future date of birth")
	}
}
