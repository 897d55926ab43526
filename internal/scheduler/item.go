package scheduler

import (
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// Default scheduling parameters (SM-2).
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ItemKey uniquely identifies a review item: one user practicing one
// specific conjugated form.
type ItemKey struct {
	UserID     string
	Infinitive string
	Tense      conjugation.Tense
	Person     conjugation.Person
}

// ReviewItem holds the spaced repetition state for a single item. The
// repository owns persistence; the scheduler operates on copies and
// returns updated values without I/O.
//
// Learning stage is implicit in RepetitionCount: 0 = new, 1-2 = learning,
// >= 3 = review. Items cycle indefinitely, decaying back on failure.
type ReviewItem struct {
	Key             ItemKey
	EaseFactor      float64
	IntervalDays    int
	RepetitionCount int
	DueDate         time.Time
	LastQuality     int
}

// NewReviewItem returns the first-exposure default schedule: due
// immediately, default ease.
func NewReviewItem(key ItemKey, now time.Time) ReviewItem {
	return ReviewItem{
		Key:        key,
		EaseFactor: DefaultEaseFactor,
		DueDate:    now,
	}
}

// Due reports whether the item is at or past its due date.
func (it ReviewItem) Due(asOf time.Time) bool {
	return !asOf.Before(it.DueDate)
}
