package session

import (
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// State is the session lifecycle phase.
type State string

const (
	StateIdle      State = "idle"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

// ExercisePresentation is what the caller shows the learner. It never
// carries the correct answer; the blank in SentenceTemplate is filled by
// the learner.
type ExercisePresentation struct {
	SentenceTemplate string
	Infinitive       string
	Tense            conjugation.Tense
	Person           conjugation.Person
	Review           bool // true when this is a due review item
}

// SubmissionResult is the graded outcome of one answer.
type SubmissionResult struct {
	IsCorrect     bool
	MatchType     conjugation.MatchType
	Category      analyzer.Category // empty on an exact match
	Hint          string            // teaching hint, empty on an exact match
	CorrectAnswer string            // revealed after grading
	Quality       int
	NextDueInDays int
}

// Summary describes a completed session.
type Summary struct {
	SessionID string
	UserID    string
	Answered  int
	Correct   int
	Duration  time.Duration
}

// Accuracy is the fraction of correct submissions, 0 when nothing was
// answered.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}
