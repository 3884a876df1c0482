package Models

import "testing"

func TestEligibleForAge(t *testing.T) {
	assessment := Assessment{MinAgeMonths: 36, MaxAgeMonths: 72}

	cases := []struct {
		age  int
		want bool
	}{
		{35, false},
		{36, true},
		{54, true},
		{72, true},
		{73, false},
	}
	for _, tc := range cases {
		if got := assessment.EligibleForAge(tc.age); got != tc.want {
			t.Errorf("EligibleForAge(%d) = %v, want %v", tc.age, got, tc.want)
		}
	}
}

func TestEligibleForAgeNewborn(t *testing.T) {
	assessment := Assessment{MinAgeMonths: 0, MaxAgeMonths: 36}
	if !assessment.EligibleForAge(0) {
		t.Error("a newborn should fit the 0-36 month band")
	}
}
