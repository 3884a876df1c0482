package Onboarding

import (
	"encoding/json"
	"errors"
)

// TotalSteps in the CDC registration wizard.
const TotalSteps = 7

// StepTitles, in order.
var StepTitles = []string{
	"Basic Info",
	"Address",
	"Services",
	"Photos & Docs",
	"Therapists",
	"Schedules",
	"Review",
}

var (
	ErrNotAtReview      = errors.New("all steps must be completed before submitting")
	ErrAlreadySubmitted = errors.New("onboarding already submitted")
)

// Wizard accumulates the registration form across steps. Next merges and
// advances, Previous steps back without losing anything, and the index never
// leaves [1, TotalSteps].
type Wizard struct {
	step      int
	data      map[string]interface{}
	submitted bool
}

func NewWizard() *Wizard {
	return &Wizard{step: 1, data: map[string]interface{}{}}
}

// Restore rebuilds a wizard from a persisted draft.
func Restore(step int, data map[string]interface{}, submitted bool) *Wizard {
	if step < 1 {
		step = 1
	}
	if step > TotalSteps {
		step = TotalSteps
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Wizard{step: step, data: data, submitted: submitted}
}

func (w *Wizard) Step() int       { return w.step }
func (w *Wizard) Submitted() bool { return w.submitted }

func (w *Wizard) StepTitle() string {
	return StepTitles[w.step-1]
}

// Merge folds a step's partial form into the accumulator (shallow).
func (w *Wizard) Merge(partial map[string]interface{}) {
	for key, value := range partial {
		w.data[key] = value
	}
}

// Next advances one step; a no-op at the final step.
func (w *Wizard) Next() {
	if w.step < TotalSteps {
		w.step++
	}
}

// Previous steps back one; a no-op at the first step.
func (w *Wizard) Previous() {
	if w.step > 1 {
		w.step--
	}
}

// Data returns a copy of the accumulator.
func (w *Wizard) Data() map[string]interface{} {
	out := make(map[string]interface{}, len(w.data))
	for key, value := range w.data {
		out[key] = value
	}
	return out
}

// Submit hands over the accumulated form, once, and only from the review
// step.
func (w *Wizard) Submit() (map[string]interface{}, error) {
	if w.submitted {
		return nil, ErrAlreadySubmitted
	}
	if w.step != TotalSteps {
		return nil, ErrNotAtReview
	}
	w.submitted = true
	return w.Data(), nil
}

// MarshalData serializes the accumulator for the draft row.
func (w *Wizard) MarshalData() (string, error) {
	data, err := json.Marshal(w.data)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalData parses a draft row's payload.
func UnmarshalData(raw string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	if raw == "" {
		return data, nil
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}
