package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
)

// MaxCandidateRetries bounds how often PresentNext re-asks the content
// provider after an unusable candidate.
const MaxCandidateRetries = 3

// exercise is the in-flight item between PresentNext and a correct
// SubmitAnswer.
type exercise struct {
	candidate   ExerciseCandidate
	correct     conjugation.VerbForm
	presentedAt time.Time
	attempts    int
	hintUsed    bool
}

// Session orchestrates one practice run for one user. Not safe for
// concurrent use: scope one instance per active session and serialize
// calls on it.
type Session struct {
	engine   *conjugation.Engine
	analyzer *analyzer.Analyzer
	ctrl     *adaptive.Controller
	repo     Repository
	provider ContentProvider
	events   EventRepo // nil disables the event log
	nowFn    func() time.Time

	id        string
	userID    string
	state     State
	window    adaptive.Window
	tier      adaptive.Tier
	items     map[scheduler.ItemKey]scheduler.ReviewItem
	dueQueue  []scheduler.ReviewItem
	current   *exercise
	startedAt time.Time
	answered  int
	correct   int
}

// Option configures a Session.
type Option func(*Session)

// WithEventRepo enables durable answer and lifecycle events.
func WithEventRepo(events EventRepo) Option {
	return func(s *Session) { s.events = events }
}

// WithClock overrides the time source.
func WithClock(nowFn func() time.Time) Option {
	return func(s *Session) { s.nowFn = nowFn }
}

// New builds an idle session over the given collaborators.
func New(engine *conjugation.Engine, an *analyzer.Analyzer, ctrl *adaptive.Controller, repo Repository, provider ContentProvider, opts ...Option) *Session {
	s := &Session{
		engine:   engine,
		analyzer: an,
		ctrl:     ctrl,
		repo:     repo,
		provider: provider,
		nowFn:    time.Now,
		id:       uuid.NewString(),
		state:    StateIdle,
		tier:     adaptive.DefaultTier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Start loads the user's window and due items and activates the session.
func (s *Session) Start(ctx context.Context, userID string) error {
	if s.state != StateIdle {
		return &InvalidSessionStateError{Op: "Start", State: s.state}
	}
	now := s.nowFn()

	items, err := s.repo.LoadReviewItems(ctx, userID)
	if err != nil {
		return err
	}
	window, err := s.repo.LoadPerformanceWindow(ctx, userID)
	if err != nil {
		return err
	}

	s.userID = userID
	s.window = window
	s.items = make(map[scheduler.ItemKey]scheduler.ReviewItem, len(items))
	for _, it := range items {
		s.items[it.Key] = it
	}
	s.dueQueue = scheduler.DueItems(items, now)
	s.startedAt = now
	s.state = StateActive

	if s.events != nil {
		_ = s.events.AppendSession(ctx, SessionEventData{
			SessionID: s.id, UserID: s.userID, Kind: "started",
		})
	}
	return nil
}

// PresentNext serves the next exercise: due review items first, then
// fresh material from the content provider at the controller's
// recommended difficulty. An unanswered previous exercise is discarded.
func (s *Session) PresentNext(ctx context.Context) (ExercisePresentation, error) {
	if s.state != StateActive {
		return ExercisePresentation{}, &InvalidSessionStateError{Op: "PresentNext", State: s.state}
	}

	plan := s.ctrl.NextDifficulty(s.window, s.tier)
	s.tier = plan.Tier

	// Due items take priority. A due verb the rule table no longer knows
	// is skipped rather than failing the session.
	for len(s.dueQueue) > 0 {
		item := s.dueQueue[0]
		s.dueQueue = s.dueQueue[1:]
		form, err := s.engine.Conjugate(item.Key.Infinitive, item.Key.Tense, item.Key.Person)
		if err != nil {
			continue
		}
		return s.present(ExerciseCandidate{
			Infinitive: item.Key.Infinitive,
			Tense:      item.Key.Tense,
			Person:     item.Key.Person,
		}, form, true), nil
	}

	var lastErr error
	for attempt := 0; attempt <= MaxCandidateRetries; attempt++ {
		cand, err := s.provider.NextExerciseCandidate(ctx, plan.Tier, plan.Emphasis)
		if err != nil {
			lastErr = err
			continue
		}
		form, err := s.engine.Conjugate(cand.Infinitive, cand.Tense, cand.Person)
		if err != nil {
			var unknown *conjugation.UnknownVerbError
			if errors.As(err, &unknown) {
				lastErr = err
				continue
			}
			return ExercisePresentation{}, err
		}
		return s.present(cand, form, false), nil
	}
	return ExercisePresentation{}, &NoExerciseAvailableError{Attempts: MaxCandidateRetries + 1, Err: lastErr}
}

func (s *Session) present(cand ExerciseCandidate, form conjugation.VerbForm, review bool) ExercisePresentation {
	s.current = &exercise{
		candidate:   cand,
		correct:     form,
		presentedAt: s.nowFn(),
	}
	return ExercisePresentation{
		SentenceTemplate: cand.SentenceTemplate,
		Infinitive:       cand.Infinitive,
		Tense:            cand.Tense,
		Person:           cand.Person,
		Review:           review,
	}
}

// Hint reveals the opening of the correct form and marks the current
// exercise as hint-assisted, capping its quality score.
func (s *Session) Hint() (string, error) {
	if s.state != StateActive || s.current == nil {
		return "", &InvalidSessionStateError{Op: "Hint", State: s.state}
	}
	s.current.hintUsed = true
	surface := []rune(s.current.correct.Surface)
	n := 2
	if len(surface) < n {
		n = len(surface)
	}
	return "empieza con «" + string(surface[:n]) + "…»", nil
}

// SubmitAnswer grades the learner's answer against the current exercise,
// updates the review schedule, and records the outcome. An incorrect
// answer keeps the exercise open so the learner may retry; a correct one
// (or the next PresentNext) closes it.
func (s *Session) SubmitAnswer(ctx context.Context, raw string) (SubmissionResult, error) {
	if s.state != StateActive {
		return SubmissionResult{}, &InvalidSessionStateError{Op: "SubmitAnswer", State: s.state}
	}
	cur := s.current
	if cur == nil {
		return SubmissionResult{}, &InvalidSessionStateError{Op: "SubmitAnswer", State: s.state}
	}
	now := s.nowFn()
	latency := now.Sub(cur.presentedAt)

	validation := conjugation.CompareAnswer(cur.correct.Surface, raw, conjugation.ValidateOptions{})

	var cls analyzer.Classification
	if validation.MatchType != conjugation.MatchExact {
		cls = s.analyzer.Classify(cur.correct, raw, validation)
	}

	quality := scheduler.DeriveQuality(scheduler.AnswerSignals{
		Correct:    validation.IsCorrect,
		MatchType:  validation.MatchType,
		Classified: cls.Category != "" && cls.Category != analyzer.CategoryUnknown,
		UsedHint:   cur.hintUsed,
		Retry:      cur.attempts > 0,
		LatencyMs:  int(latency.Milliseconds()),
	})

	key := scheduler.ItemKey{
		UserID:     s.userID,
		Infinitive: cur.candidate.Infinitive,
		Tense:      cur.candidate.Tense,
		Person:     cur.candidate.Person,
	}
	item, ok := s.items[key]
	if !ok {
		item = scheduler.NewReviewItem(key, now)
	}
	item = scheduler.Update(item, quality, now)
	if err := s.repo.SaveReviewItem(ctx, item); err != nil {
		return SubmissionResult{}, err
	}
	s.items[key] = item

	// An exact match counts as a clean outcome; anything else, including
	// an accent-insensitive pass, feeds the window as an error so the
	// controller can steer emphasis toward it.
	outcomeCorrect := validation.MatchType == conjugation.MatchExact
	s.window = s.ctrl.RecordOutcome(s.window, outcomeCorrect, cls.Category, now)

	s.answered++
	if validation.IsCorrect {
		s.correct++
		s.current = nil
	} else {
		cur.attempts++
	}

	if s.events != nil {
		_ = s.events.AppendAnswer(ctx, AnswerEventData{
			SessionID:  s.id,
			UserID:     s.userID,
			Infinitive: key.Infinitive,
			Tense:      key.Tense,
			Person:     key.Person,
			UserAnswer: raw,
			Correct:    validation.IsCorrect,
			MatchType:  validation.MatchType,
			Category:   cls.Category,
			Quality:    quality,
			LatencyMs:  latency.Milliseconds(),
		})
	}

	return SubmissionResult{
		IsCorrect:     validation.IsCorrect,
		MatchType:     validation.MatchType,
		Category:      cls.Category,
		Hint:          cls.Hint,
		CorrectAnswer: cur.correct.Surface,
		Quality:       quality,
		NextDueInDays: item.IntervalDays,
	}, nil
}

// End completes the session, flushing the performance window.
func (s *Session) End(ctx context.Context) (Summary, error) {
	if s.state != StateActive {
		return Summary{}, &InvalidSessionStateError{Op: "End", State: s.state}
	}
	if err := s.repo.SavePerformanceWindow(ctx, s.userID, s.window); err != nil {
		return Summary{}, err
	}
	s.state = StateCompleted
	s.current = nil

	sum := Summary{
		SessionID: s.id,
		UserID:    s.userID,
		Answered:  s.answered,
		Correct:   s.correct,
		Duration:  s.nowFn().Sub(s.startedAt),
	}
	if s.events != nil {
		_ = s.events.AppendSession(ctx, SessionEventData{
			SessionID: s.id,
			UserID:    s.userID,
			Kind:      "completed",
			Answered:  sum.Answered,
			Correct:   sum.Correct,
			Duration:  sum.Duration,
		})
	}
	return sum, nil
}
