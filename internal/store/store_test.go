package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
	"github.com/bjpl/subjunctive-practice-sub006/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testItem(user string) scheduler.ReviewItem {
	return scheduler.ReviewItem{
		Key: scheduler.ItemKey{
			UserID:     user,
			Infinitive: "hablar",
			Tense:      conjugation.TensePresent,
			Person:     conjugation.PersonYo,
		},
		EaseFactor:      2.5,
		IntervalDays:    6,
		RepetitionCount: 2,
		DueDate:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		LastQuality:     4,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReviewItemRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx := context.Background()

	item := testItem("user1")
	if err := repo.SaveReviewItem(ctx, item); err != nil {
		t.Fatalf("save: %v", err)
	}

	items, err := repo.LoadReviewItems(ctx, "user1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	got := items[0]
	if got.Key != item.Key || got.EaseFactor != item.EaseFactor ||
		got.IntervalDays != item.IntervalDays || got.RepetitionCount != item.RepetitionCount ||
		got.LastQuality != item.LastQuality {
		t.Errorf("got %+v, want %+v", got, item)
	}
	if !got.DueDate.Equal(item.DueDate) {
		t.Errorf("dueDate = %v, want %v", got.DueDate, item.DueDate)
	}
}

func TestSaveReviewItem_Upserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx := context.Background()

	item := testItem("user1")
	if err := repo.SaveReviewItem(ctx, item); err != nil {
		t.Fatalf("first save: %v", err)
	}
	item.IntervalDays = 15
	item.RepetitionCount = 3
	if err := repo.SaveReviewItem(ctx, item); err != nil {
		t.Fatalf("second save: %v", err)
	}

	items, err := repo.LoadReviewItems(ctx, "user1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items after upsert, want 1", len(items))
	}
	if items[0].IntervalDays != 15 || items[0].RepetitionCount != 3 {
		t.Errorf("got %+v, want updated schedule", items[0])
	}
}

func TestLoadReviewItems_ScopedToUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx := context.Background()

	if err := repo.SaveReviewItem(ctx, testItem("user1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	other := testItem("user2")
	if err := repo.SaveReviewItem(ctx, other); err != nil {
		t.Fatalf("save other: %v", err)
	}

	items, err := repo.LoadReviewItems(ctx, "user1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Key.UserID != "user1" {
		t.Errorf("items = %+v, want only user1", items)
	}
}

func TestPerformanceWindowRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx := context.Background()

	// Missing window comes back empty, not as an error.
	w, err := repo.LoadPerformanceWindow(ctx, "user1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if w.Len() != 0 {
		t.Fatalf("fresh window has %d outcomes", w.Len())
	}

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w = w.Push(adaptive.Outcome{Correct: true, At: at})
	w = w.Push(adaptive.Outcome{Correct: false, Category: analyzer.CategoryStemChange, At: at.Add(time.Minute)})
	if err := repo.SavePerformanceWindow(ctx, "user1", w); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadPerformanceWindow(ctx, "user1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("got %d outcomes, want 2", got.Len())
	}
	outcomes := got.Outcomes()
	if !outcomes[0].Correct || outcomes[1].Correct {
		t.Errorf("outcome order lost: %+v", outcomes)
	}
	if outcomes[1].Category != analyzer.CategoryStemChange {
		t.Errorf("category = %v", outcomes[1].Category)
	}

	// Second save overwrites, not duplicates.
	w = w.Push(adaptive.Outcome{Correct: true, At: at.Add(2 * time.Minute)})
	if err := repo.SavePerformanceWindow(ctx, "user1", w); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, err = repo.LoadPerformanceWindow(ctx, "user1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Len() != 3 {
		t.Errorf("got %d outcomes after resave, want 3", got.Len())
	}
}

func TestRepositoryErrorsAreTyped(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadReviewItems(ctx, "user1")
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	var repoErr *session.RepositoryError
	if !errors.As(err, &repoErr) {
		t.Errorf("err = %T, want *session.RepositoryError", err)
	}
}

func TestEventLogAndStats(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	if err := events.AppendSession(ctx, session.SessionEventData{
		SessionID: "s1", UserID: "user1", Kind: "started",
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	answers := []session.AnswerEventData{
		{SessionID: "s1", UserID: "user1", Infinitive: "hablar", Tense: conjugation.TensePresent, Person: conjugation.PersonYo, UserAnswer: "hable", Correct: true, MatchType: conjugation.MatchExact, Quality: 5},
		{SessionID: "s1", UserID: "user1", Infinitive: "pensar", Tense: conjugation.TensePresent, Person: conjugation.PersonYo, UserAnswer: "pense", Correct: false, MatchType: conjugation.MatchMismatch, Category: analyzer.CategoryStemChange, Quality: 1},
		{SessionID: "s1", UserID: "user1", Infinitive: "pensar", Tense: conjugation.TensePresent, Person: conjugation.PersonYo, UserAnswer: "piense", Correct: true, MatchType: conjugation.MatchExact, Quality: 3},
	}
	for _, a := range answers {
		if err := events.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	if err := events.AppendSession(ctx, session.SessionEventData{
		SessionID: "s1", UserID: "user1", Kind: "completed", Answered: 3, Correct: 2,
	}); err != nil {
		t.Fatalf("append session end: %v", err)
	}

	stats, err := s.UserStats(ctx, "user1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", stats.Sessions)
	}
	if stats.Answered != 3 || stats.Correct != 2 {
		t.Errorf("answered/correct = %d/%d, want 3/2", stats.Answered, stats.Correct)
	}
	if stats.ByCategory[string(analyzer.CategoryStemChange)] != 1 {
		t.Errorf("byCategory = %v", stats.ByCategory)
	}
}

func TestResetUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Repository()
	ctx := context.Background()

	if err := repo.SaveReviewItem(ctx, testItem("user1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	w := adaptive.NewWindow(adaptive.DefaultWindowSize).
		Push(adaptive.Outcome{Correct: true})
	if err := repo.SavePerformanceWindow(ctx, "user1", w); err != nil {
		t.Fatalf("save window: %v", err)
	}

	if err := s.ResetUser(ctx, "user1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	items, err := repo.LoadReviewItems(ctx, "user1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %+v after reset", items)
	}
	got, err := repo.LoadPerformanceWindow(ctx, "user1")
	if err != nil {
		t.Fatalf("load window: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("window has %d outcomes after reset", got.Len())
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
