package Scoring

import "testing"

func startAttempt(t *testing.T, questions int) *Attempt {
	t.Helper()
	ids := make([]uint, questions)
	for i := range ids {
		ids[i] = uint(i + 1)
	}
	a := NewAttempt()
	if err := a.Start(1, 1, ids, 30, 0, 36); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return a
}

func runSheet(t *testing.T, answers []bool) *Result {
	t.Helper()
	a := startAttempt(t, len(answers))
	var result *Result
	var err error
	for i, isPositive := range answers {
		result, err = a.Answer(i, isPositive)
		if err != nil {
			t.Fatalf("Answer(%d): %v", i, err)
		}
	}
	if result == nil {
		t.Fatal("last answer did not submit")
	}
	return result
}

func sheet(n, negative int) []bool {
	answers := make([]bool, n)
	for i := range answers {
		answers[i] = i >= negative
	}
	return answers
}

func TestThresholdExactness(t *testing.T) {
	cases := []struct {
		n, negative int
		wantPct     float64
		wantNeeds   bool
	}{
		{5, 2, 40, true},
		{10, 2, 20, false},
		{10, 3, 30, true}, // boundary: exactly 30.0 recommends
		{5, 0, 0, false},
		{5, 5, 100, true},
		{4, 1, 25, false},
		{3, 1, 100.0 / 3, true},
	}

	for _, c := range cases {
		result := runSheet(t, sheet(c.n, c.negative))
		if result.NegativePercentage != c.wantPct {
			t.Errorf("n=%d k=%d: percentage = %v, want %v", c.n, c.negative, result.NegativePercentage, c.wantPct)
		}
		if result.NeedsConsultation != c.wantNeeds {
			t.Errorf("n=%d k=%d: needsConsultation = %v, want %v", c.n, c.negative, result.NeedsConsultation, c.wantNeeds)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	for _, n := range []int{1, 5, 10, 17} {
		prev := -1.0
		for k := 0; k <= n; k++ {
			result := runSheet(t, sheet(n, k))
			if result.NegativePercentage < prev {
				t.Fatalf("n=%d: percentage dropped from %v to %v at k=%d", n, prev, result.NegativePercentage, k)
			}
			prev = result.NegativePercentage
		}
	}
}

func TestRecommendationText(t *testing.T) {
	flagged := runSheet(t, []bool{true, false, false, true, false})
	if flagged.NegativePercentage != 60 || !flagged.NeedsConsultation {
		t.Fatalf("got %v%%, needs=%v; want 60%%, true", flagged.NegativePercentage, flagged.NeedsConsultation)
	}
	if flagged.Recommendation != RecommendConsultation {
		t.Errorf("flagged result carries wrong recommendation: %q", flagged.Recommendation)
	}

	healthy := runSheet(t, []bool{true, true, true, true, false})
	if healthy.NeedsConsultation {
		t.Fatal("20% negative flagged a consultation")
	}
	if healthy.Recommendation != RecommendHealthy {
		t.Errorf("healthy result carries wrong recommendation: %q", healthy.Recommendation)
	}
}

func TestStartPreconditions(t *testing.T) {
	a := NewAttempt()
	if err := a.Start(1, 1, []uint{1, 2}, 40, 0, 36); err != ErrNotEligible {
		t.Errorf("age above band: err = %v, want ErrNotEligible", err)
	}
	if err := a.Start(1, 1, nil, 30, 0, 36); err != ErrNoQuestions {
		t.Errorf("no questions: err = %v, want ErrNoQuestions", err)
	}
	// Inclusive bounds.
	if err := a.Start(1, 1, []uint{1, 2}, 36, 0, 36); err != nil {
		t.Errorf("age at max bound rejected: %v", err)
	}
	if err := a.Start(2, 1, []uint{1}, 36, 0, 36); err != ErrAlreadyStarted {
		t.Errorf("second start: err = %v, want ErrAlreadyStarted", err)
	}
}

func TestAnswerPreconditions(t *testing.T) {
	a := NewAttempt()
	if _, err := a.Answer(0, true); err != ErrNotInProgress {
		t.Errorf("answer before start: err = %v, want ErrNotInProgress", err)
	}

	a = startAttempt(t, 3)
	if _, err := a.Answer(-1, true); err != ErrIndexOutOfRange {
		t.Errorf("negative index: err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := a.Answer(3, true); err != ErrIndexOutOfRange {
		t.Errorf("index past end: err = %v, want ErrIndexOutOfRange", err)
	}
	if a.CurrentIndex() != 0 {
		t.Fatalf("failed answers moved the index to %d", a.CurrentIndex())
	}
	if a.State() != InProgress {
		t.Fatal("failed answers changed the state")
	}
}

func TestSubmitRequiresAllAnswers(t *testing.T) {
	a := startAttempt(t, 3)
	if _, err := a.Answer(0, true); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Submit(); err != ErrUnanswered {
		t.Fatalf("partial submit: err = %v, want ErrUnanswered", err)
	}
	if a.State() != InProgress {
		t.Fatal("failed submit changed the state")
	}
	// Jumping straight to the last question triggers submit, which must
	// also refuse while earlier questions are blank.
	if _, err := a.Answer(2, true); err != ErrUnanswered {
		t.Fatalf("last-question shortcut: err = %v, want ErrUnanswered", err)
	}
	if _, err := a.Answer(1, false); err != nil {
		t.Fatal(err)
	}
	result, err := a.Submit()
	if err != nil {
		t.Fatalf("complete submit: %v", err)
	}
	if result.NegativeCount != 1 {
		t.Fatalf("negative count = %d, want 1", result.NegativeCount)
	}
	if a.State() != Submitted {
		t.Fatal("submit did not finish the attempt")
	}
	if _, err := a.Submit(); err != ErrNotInProgress {
		t.Fatalf("double submit: err = %v, want ErrNotInProgress", err)
	}
}

func TestReanswerOverwrites(t *testing.T) {
	a := startAttempt(t, 2)
	if _, err := a.Answer(0, false); err != nil {
		t.Fatal(err)
	}
	// Go back and change the answer before finishing: last write wins.
	if _, err := a.Answer(0, true); err != nil {
		t.Fatal(err)
	}
	result, err := a.Answer(1, true)
	if err != nil {
		t.Fatal(err)
	}
	if result.NegativeCount != 0 {
		t.Fatalf("overwritten answer still counted: negative = %d", result.NegativeCount)
	}
}

func TestAbandonDiscardsSheet(t *testing.T) {
	a := startAttempt(t, 3)
	if _, err := a.Answer(0, false); err != nil {
		t.Fatal(err)
	}
	a.Abandon()
	if a.State() != Selecting {
		t.Fatal("abandon did not return to selecting")
	}
	// A fresh start gets a clean sheet, no carryover.
	if err := a.Start(1, 1, []uint{1, 2, 3}, 30, 0, 36); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Submit(); err != ErrUnanswered {
		t.Fatalf("old answers leaked into new attempt: err = %v", err)
	}
}
