package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
)

var sessionNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// mockRepo is an in-memory Repository with injectable failures.
type mockRepo struct {
	items       map[scheduler.ItemKey]scheduler.ReviewItem
	window      adaptive.Window
	savedWindow bool
	failLoad    error
	failSave    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		items:  make(map[scheduler.ItemKey]scheduler.ReviewItem),
		window: adaptive.NewWindow(adaptive.DefaultWindowSize),
	}
}

func (m *mockRepo) LoadReviewItems(_ context.Context, userID string) ([]scheduler.ReviewItem, error) {
	if m.failLoad != nil {
		return nil, m.failLoad
	}
	var out []scheduler.ReviewItem
	for _, it := range m.items {
		if it.Key.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRepo) SaveReviewItem(_ context.Context, item scheduler.ReviewItem) error {
	if m.failSave != nil {
		return m.failSave
	}
	m.items[item.Key] = item
	return nil
}

func (m *mockRepo) LoadPerformanceWindow(_ context.Context, _ string) (adaptive.Window, error) {
	return m.window, nil
}

func (m *mockRepo) SavePerformanceWindow(_ context.Context, _ string, w adaptive.Window) error {
	m.window = w
	m.savedWindow = true
	return nil
}

// mockProvider pops candidates from a queue.
type mockProvider struct {
	queue []ExerciseCandidate
	calls int
}

func (m *mockProvider) NextExerciseCandidate(_ context.Context, _ adaptive.Tier, _ analyzer.Category) (ExerciseCandidate, error) {
	m.calls++
	if len(m.queue) == 0 {
		return ExerciseCandidate{}, errors.New("provider exhausted")
	}
	cand := m.queue[0]
	m.queue = m.queue[1:]
	return cand, nil
}

// mockEventRepo records appended events.
type mockEventRepo struct {
	answers  []AnswerEventData
	sessions []SessionEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func (m *mockEventRepo) AppendSession(_ context.Context, data SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func cand(inf string) ExerciseCandidate {
	return ExerciseCandidate{
		Infinitive:       inf,
		Tense:            conjugation.TensePresent,
		Person:           conjugation.PersonYo,
		SentenceTemplate: "Espero que yo ___ bien.",
	}
}

func newTestSession(t *testing.T, repo Repository, provider ContentProvider, opts ...Option) *Session {
	t.Helper()
	table, err := conjugation.DefaultRuleTable()
	if err != nil {
		t.Fatalf("build rule table: %v", err)
	}
	engine := conjugation.NewEngine(table)
	an := analyzer.New(engine)
	ctrl := adaptive.NewController(adaptive.DefaultConfig())
	opts = append([]Option{WithClock(func() time.Time { return sessionNow })}, opts...)
	return New(engine, an, ctrl, repo, provider, opts...)
}

func TestSession_Lifecycle(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("hablar")}}
	events := &mockEventRepo{}
	s := newTestSession(t, repo, provider, WithEventRepo(events))
	ctx := context.Background()

	if s.State() != StateIdle {
		t.Fatalf("state = %v, want idle", s.State())
	}
	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateActive {
		t.Fatalf("state = %v, want active", s.State())
	}

	p, err := s.PresentNext(ctx)
	if err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	if p.Infinitive != "hablar" || p.Review {
		t.Errorf("presentation = %+v, want fresh hablar", p)
	}

	res, err := s.SubmitAnswer(ctx, "hable")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.IsCorrect || res.MatchType != conjugation.MatchExact {
		t.Errorf("result = %+v, want exact correct", res)
	}
	if res.Quality != 5 {
		t.Errorf("quality = %d, want 5 for a fast exact answer", res.Quality)
	}
	if res.NextDueInDays != 1 {
		t.Errorf("nextDue = %d, want 1", res.NextDueInDays)
	}
	if res.CorrectAnswer != "hable" {
		t.Errorf("correctAnswer = %q", res.CorrectAnswer)
	}

	sum, err := s.End(ctx)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if sum.Answered != 1 || sum.Correct != 1 {
		t.Errorf("summary = %+v, want 1/1", sum)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %v, want completed", s.State())
	}
	if !repo.savedWindow {
		t.Error("End did not flush the performance window")
	}
	if len(events.sessions) != 2 || events.sessions[0].Kind != "started" || events.sessions[1].Kind != "completed" {
		t.Errorf("session events = %+v", events.sessions)
	}
	if len(events.answers) != 1 || events.answers[0].Quality != 5 {
		t.Errorf("answer events = %+v", events.answers)
	}
}

func TestSession_DueItemsServedFirst(t *testing.T) {
	repo := newMockRepo()
	key := scheduler.ItemKey{
		UserID:     "user1",
		Infinitive: "tener",
		Tense:      conjugation.TensePresent,
		Person:     conjugation.PersonNosotros,
	}
	repo.items[key] = scheduler.ReviewItem{
		Key:        key,
		EaseFactor: 2.5,
		DueDate:    sessionNow.AddDate(0, 0, -1),
	}
	provider := &mockProvider{queue: []ExerciseCandidate{cand("hablar")}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p, err := s.PresentNext(ctx)
	if err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	if p.Infinitive != "tener" || !p.Review {
		t.Fatalf("presentation = %+v, want due tener review", p)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times before due queue drained", provider.calls)
	}

	// Due queue drained: next exercise comes from the provider.
	if _, err := s.SubmitAnswer(ctx, "tengamos"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	p, err = s.PresentNext(ctx)
	if err != nil {
		t.Fatalf("second PresentNext: %v", err)
	}
	if p.Infinitive != "hablar" || p.Review {
		t.Errorf("presentation = %+v, want fresh hablar", p)
	}
}

func TestSession_RetryThenCorrect(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("pensar")}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := s.PresentNext(ctx); err != nil {
		t.Fatalf("PresentNext: %v", err)
	}

	// Missing stem change: classified, quality 1, exercise stays open.
	res, err := s.SubmitAnswer(ctx, "pense")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.IsCorrect {
		t.Fatal("pense accepted for piense")
	}
	if res.Category != analyzer.CategoryStemChange {
		t.Errorf("category = %v, want stem change", res.Category)
	}
	if res.Quality != 1 {
		t.Errorf("quality = %d, want 1", res.Quality)
	}
	if res.Hint == "" {
		t.Error("expected a teaching hint")
	}

	// Correct on retry scores 3.
	res, err = s.SubmitAnswer(ctx, "piense")
	if err != nil {
		t.Fatalf("retry SubmitAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Fatal("piense rejected")
	}
	if res.Quality != 3 {
		t.Errorf("retry quality = %d, want 3", res.Quality)
	}
}

func TestSession_AccentInsensitivePass(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{{
		Infinitive: "hablar",
		Tense:      conjugation.TensePresent,
		Person:     conjugation.PersonVosotros,
	}}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := s.PresentNext(ctx); err != nil {
		t.Fatalf("PresentNext: %v", err)
	}

	res, err := s.SubmitAnswer(ctx, "hableis")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Fatal("accent-insensitive match should still count as correct")
	}
	if res.MatchType != conjugation.MatchAccentInsensitive {
		t.Errorf("matchType = %v", res.MatchType)
	}
	if res.Quality != 2 {
		t.Errorf("quality = %d, want 2", res.Quality)
	}
	if res.Category != analyzer.CategoryAccent {
		t.Errorf("category = %v, want accent", res.Category)
	}
}

func TestSession_HintCapsQuality(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("hablar")}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := s.PresentNext(ctx); err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	hint, err := s.Hint()
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if hint == "" {
		t.Error("empty hint")
	}
	res, err := s.SubmitAnswer(ctx, "hable")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Quality != 4 {
		t.Errorf("quality = %d, want 4 after a hint", res.Quality)
	}
}

func TestSession_UnknownVerbRetriesThenFails(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{
		cand("xyzzar"), cand("blorgir"), cand("fnordar"), cand("quuxer"),
	}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	_, err := s.PresentNext(ctx)
	var noEx *NoExerciseAvailableError
	if !errors.As(err, &noEx) {
		t.Fatalf("err = %v, want NoExerciseAvailableError", err)
	}
	if noEx.Attempts != MaxCandidateRetries+1 {
		t.Errorf("attempts = %d, want %d", noEx.Attempts, MaxCandidateRetries+1)
	}
	var unknown *conjugation.UnknownVerbError
	if !errors.As(noEx, &unknown) {
		t.Errorf("cause = %v, want UnknownVerbError", noEx.Err)
	}
}

func TestSession_UnknownVerbRecovers(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("xyzzar"), cand("comer")}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p, err := s.PresentNext(ctx)
	if err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	if p.Infinitive != "comer" {
		t.Errorf("infinitive = %q, want fallback to comer", p.Infinitive)
	}
}

func TestSession_InvalidStateTransitions(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("hablar")}}
	s := newTestSession(t, repo, provider)
	ctx := context.Background()

	var invalid *InvalidSessionStateError

	// Everything but Start fails while idle.
	if _, err := s.PresentNext(ctx); !errors.As(err, &invalid) {
		t.Errorf("PresentNext while idle: %v", err)
	}
	if _, err := s.SubmitAnswer(ctx, "hable"); !errors.As(err, &invalid) {
		t.Errorf("SubmitAnswer while idle: %v", err)
	}
	if _, err := s.End(ctx); !errors.As(err, &invalid) {
		t.Errorf("End while idle: %v", err)
	}

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// SubmitAnswer before PresentNext.
	if _, err := s.SubmitAnswer(ctx, "hable"); !errors.As(err, &invalid) {
		t.Errorf("SubmitAnswer before PresentNext: %v", err)
	}
	// Double Start.
	if err := s.Start(ctx, "user1"); !errors.As(err, &invalid) {
		t.Errorf("second Start: %v", err)
	}

	if _, err := s.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	// Nothing works after End.
	if _, err := s.PresentNext(ctx); !errors.As(err, &invalid) {
		t.Errorf("PresentNext after End: %v", err)
	}
	if _, err := s.SubmitAnswer(ctx, "hable"); !errors.As(err, &invalid) {
		t.Errorf("SubmitAnswer after End: %v", err)
	}
}

func TestSession_RepositoryErrorPropagatesUnmodified(t *testing.T) {
	repoErr := &RepositoryError{Op: "load review items", Err: errors.New("disk gone")}
	repo := newMockRepo()
	repo.failLoad = repoErr
	s := newTestSession(t, repo, &mockProvider{})

	err := s.Start(context.Background(), "user1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want the exact repository error", err)
	}

	repo2 := newMockRepo()
	saveErr := &RepositoryError{Op: "save review item", Err: errors.New("disk gone")}
	repo2.failSave = saveErr
	s2 := newTestSession(t, repo2, &mockProvider{queue: []ExerciseCandidate{cand("hablar")}})
	ctx := context.Background()
	if err := s2.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := s2.PresentNext(ctx); err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	if _, err := s2.SubmitAnswer(ctx, "hable"); !errors.Is(err, saveErr) {
		t.Fatalf("err = %v, want the exact repository error", err)
	}
}

func TestSession_SlowAnswerScoresFour(t *testing.T) {
	repo := newMockRepo()
	provider := &mockProvider{queue: []ExerciseCandidate{cand("hablar")}}

	current := sessionNow
	s := newTestSession(t, repo, provider, WithClock(func() time.Time { return current }))
	ctx := context.Background()

	if err := s.Start(ctx, "user1"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := s.PresentNext(ctx); err != nil {
		t.Fatalf("PresentNext: %v", err)
	}
	current = current.Add(30 * time.Second)
	res, err := s.SubmitAnswer(ctx, "hable")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Quality != 4 {
		t.Errorf("quality = %d, want 4 for a slow answer", res.Quality)
	}
}
