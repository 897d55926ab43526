package session

import (
	"context"
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
)

// Repository persists review schedules and performance windows. The
// orchestrator is the only caller; implementations own durability and
// report failures as *RepositoryError, which the orchestrator propagates
// unmodified.
type Repository interface {
	// LoadReviewItems returns every review item for the user.
	LoadReviewItems(ctx context.Context, userID string) ([]scheduler.ReviewItem, error)

	// SaveReviewItem upserts one item keyed by item.Key.
	SaveReviewItem(ctx context.Context, item scheduler.ReviewItem) error

	// LoadPerformanceWindow returns the user's persisted window, or an
	// empty one if the user has no history.
	LoadPerformanceWindow(ctx context.Context, userID string) (adaptive.Window, error)

	// SavePerformanceWindow stores the window for the user.
	SavePerformanceWindow(ctx context.Context, userID string, w adaptive.Window) error
}

// ExerciseCandidate is what a content provider proposes: a target form
// plus a cloze sentence with a blank where the conjugation goes.
type ExerciseCandidate struct {
	Infinitive       string
	Tense            conjugation.Tense
	Person           conjugation.Person
	SentenceTemplate string
}

// ContentProvider supplies fresh exercise material. The orchestrator
// treats it as opaque: a candidate naming a verb the rule table does not
// know is discarded and another one requested.
type ContentProvider interface {
	NextExerciseCandidate(ctx context.Context, tier adaptive.Tier, emphasis analyzer.Category) (ExerciseCandidate, error)
}

// AnswerEventData captures one graded submission for the event log.
type AnswerEventData struct {
	SessionID  string
	UserID     string
	Infinitive string
	Tense      conjugation.Tense
	Person     conjugation.Person
	UserAnswer string
	Correct    bool
	MatchType  conjugation.MatchType
	Category   analyzer.Category
	Quality    int
	LatencyMs  int64
}

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID string
	UserID    string
	Kind      string // "started" or "completed"
	Answered  int
	Correct   int
	Duration  time.Duration
}

// EventRepo provides append access to the durable event log. Optional:
// a nil EventRepo disables telemetry without affecting the session.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
}
