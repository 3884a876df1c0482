package Scoring

import (
	"errors"
	"time"
)

// ConsultationThreshold is the negative-answer percentage at and above which
// a paid consultation is recommended.
const ConsultationThreshold = 30.0

const (
	RecommendConsultation = "Based on the assessment results, we recommend consulting with a healthcare professional for further evaluation and possible therapy."
	RecommendHealthy      = "Your child appears to be developing well. Continue monitoring their progress and maintain regular check-ups."
)

type State int

const (
	Selecting State = iota
	InProgress
	Submitted
)

var (
	ErrNotInProgress   = errors.New("no assessment in progress")
	ErrAlreadyStarted  = errors.New("assessment already in progress")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrUnanswered      = errors.New("please answer every question before submitting")
	ErrNotEligible     = errors.New("child's age is outside the assessment's range")
	ErrNoQuestions     = errors.New("assessment has no questions")
)

// Attempt walks one child through one assessment. Answers arrive in question
// order; re-answering before submit overwrites (last write wins); answering
// the final question submits. Each Start gets a fresh answer sheet.
type Attempt struct {
	state        State
	assessmentID uint
	childID      uint
	questionIDs  []uint
	answers      []*bool
	index        int
	result       *Result
}

// Result is the immutable outcome of a submitted attempt.
type Result struct {
	AssessmentID       uint
	ChildID            uint
	Answers            []bool
	NegativeCount      int
	NegativePercentage float64
	NeedsConsultation  bool
	Recommendation     string
	CompletedAt        time.Time
}

func NewAttempt() *Attempt {
	return &Attempt{state: Selecting}
}

func (a *Attempt) State() State { return a.state }

// CurrentIndex is the next question waiting for an answer.
func (a *Attempt) CurrentIndex() int { return a.index }

// Start moves to the first question after checking the child is inside the
// assessment's age band. Any answers from a prior attempt are discarded.
func (a *Attempt) Start(assessmentID, childID uint, questionIDs []uint, ageInMonths, minAgeMonths, maxAgeMonths int) error {
	if a.state == InProgress {
		return ErrAlreadyStarted
	}
	if len(questionIDs) == 0 {
		return ErrNoQuestions
	}
	if ageInMonths < minAgeMonths || ageInMonths > maxAgeMonths {
		return ErrNotEligible
	}
	a.assessmentID = assessmentID
	a.childID = childID
	a.questionIDs = append([]uint(nil), questionIDs...)
	a.answers = make([]*bool, len(questionIDs))
	a.index = 0
	a.result = nil
	a.state = InProgress
	return nil
}

// Answer records the boolean for a question. Answering the last question
// submits the attempt; the returned result is nil until then.
func (a *Attempt) Answer(questionIndex int, isPositive bool) (*Result, error) {
	if a.state != InProgress {
		return nil, ErrNotInProgress
	}
	if questionIndex < 0 || questionIndex >= len(a.answers) {
		return nil, ErrIndexOutOfRange
	}
	value := isPositive
	a.answers[questionIndex] = &value

	if questionIndex == len(a.answers)-1 {
		return a.Submit()
	}
	if questionIndex == a.index {
		a.index++
	}
	return nil, nil
}

// Submit scores the sheet. Every question must be answered; on a violation
// the attempt stays in progress untouched.
func (a *Attempt) Submit() (*Result, error) {
	if a.state != InProgress {
		return nil, ErrNotInProgress
	}
	answers := make([]bool, len(a.answers))
	for i, answer := range a.answers {
		if answer == nil {
			return nil, ErrUnanswered
		}
		answers[i] = *answer
	}

	negative := 0
	for _, isPositive := range answers {
		if !isPositive {
			negative++
		}
	}
	percentage := Percentage(negative, len(answers))
	needs := percentage >= ConsultationThreshold

	recommendation := RecommendHealthy
	if needs {
		recommendation = RecommendConsultation
	}

	a.result = &Result{
		AssessmentID:       a.assessmentID,
		ChildID:            a.childID,
		Answers:            answers,
		NegativeCount:      negative,
		NegativePercentage: percentage,
		NeedsConsultation:  needs,
		Recommendation:     recommendation,
		CompletedAt:        time.Now(),
	}
	a.state = Submitted
	return a.result, nil
}

// Abandon discards an in-progress sheet without persisting anything.
func (a *Attempt) Abandon() {
	if a.state != InProgress {
		return
	}
	a.answers = nil
	a.index = 0
	a.state = Selecting
}

// Percentage of negative answers over n questions, on a 0-100 scale.
func Percentage(negative, n int) float64 {
	if n == 0 {
		return 0
	}
	return 100 * float64(negative) / float64(n)
}
