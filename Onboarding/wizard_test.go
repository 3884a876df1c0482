package Onboarding

import "testing"

func TestStepBounds(t *testing.T) {
	w := NewWizard()
	if w.Step() != 1 {
		t.Fatalf("fresh wizard at step %d", w.Step())
	}

	w.Previous()
	if w.Step() != 1 {
		t.Fatalf("Previous at step 1 moved to %d", w.Step())
	}

	for i := 0; i < TotalSteps+3; i++ {
		w.Next()
	}
	if w.Step() != TotalSteps {
		t.Fatalf("Next past the end moved to %d", w.Step())
	}
}

func TestMergeSurvivesNavigation(t *testing.T) {
	w := NewWizard()

	w.Merge(map[string]interface{}{"name": "Sunrise CDC"})
	w.Next()
	w.Merge(map[string]interface{}{"city": "Pune"})
	w.Next()
	w.Merge(map[string]interface{}{"services": []string{"speech", "occupational"}})

	w.Previous()
	w.Previous()
	if w.Step() != 1 {
		t.Fatalf("expected step 1, at %d", w.Step())
	}

	for w.Step() < TotalSteps {
		w.Next()
	}
	data := w.Data()
	if data["name"] != "Sunrise CDC" || data["city"] != "Pune" {
		t.Fatalf("earlier steps lost after navigation: %v", data)
	}
	if data["services"] == nil {
		t.Fatal("step 3 data missing at review")
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	w := NewWizard()
	w.Merge(map[string]interface{}{"phone": "111"})
	w.Merge(map[string]interface{}{"phone": "222"})
	if w.Data()["phone"] != "222" {
		t.Fatalf("phone = %v, want 222", w.Data()["phone"])
	}
}

func TestSubmitOnlyAtReview(t *testing.T) {
	w := NewWizard()
	w.Merge(map[string]interface{}{"name": "Sunrise CDC"})

	if _, err := w.Submit(); err != ErrNotAtReview {
		t.Fatalf("early submit: err = %v, want ErrNotAtReview", err)
	}

	for w.Step() < TotalSteps {
		w.Next()
	}
	data, err := w.Submit()
	if err != nil {
		t.Fatalf("submit at review: %v", err)
	}
	if data["name"] != "Sunrise CDC" {
		t.Fatalf("submitted payload missing data: %v", data)
	}

	if _, err := w.Submit(); err != ErrAlreadySubmitted {
		t.Fatalf("second submit: err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	w := NewWizard()
	w.Merge(map[string]interface{}{"name": "Sunrise CDC", "seats": float64(12)})
	w.Next()
	w.Next()

	raw, err := w.MarshalData()
	if err != nil {
		t.Fatal(err)
	}
	data, err := UnmarshalData(raw)
	if err != nil {
		t.Fatal(err)
	}

	restored := Restore(w.Step(), data, false)
	if restored.Step() != 3 {
		t.Fatalf("restored at step %d, want 3", restored.Step())
	}
	if restored.Data()["name"] != "Sunrise CDC" {
		t.Fatalf("restored data lost: %v", restored.Data())
	}
	if restored.Data()["seats"] != float64(12) {
		t.Fatalf("numeric round trip: %v", restored.Data()["seats"])
	}
}

func TestRestoreClampsStep(t *testing.T) {
	if got := Restore(0, nil, false).Step(); got != 1 {
		t.Errorf("Restore(0) step = %d, want 1", got)
	}
	if got := Restore(99, nil, false).Step(); got != TotalSteps {
		t.Errorf("Restore(99) step = %d, want %d", got, TotalSteps)
	}
}
