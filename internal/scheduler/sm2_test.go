package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testKey(user string) ItemKey {
	return ItemKey{
		UserID:     user,
		Infinitive: "hablar",
		Tense:      conjugation.TensePresent,
		Person:     conjugation.PersonYo,
	}
}

func TestUpdate_SuccessLadder(t *testing.T) {
	item := NewReviewItem(testKey("u1"), testNow)

	// First success: interval 1.
	item = Update(item, 5, testNow)
	if item.IntervalDays != 1 || item.RepetitionCount != 1 {
		t.Fatalf("after first success: interval=%d reps=%d, want 1/1", item.IntervalDays, item.RepetitionCount)
	}
	if math.Abs(item.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease = %v, want 2.6", item.EaseFactor)
	}
	if !item.DueDate.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("due = %v, want tomorrow", item.DueDate)
	}

	// Second success: interval 6.
	item = Update(item, 4, testNow)
	if item.IntervalDays != 6 || item.RepetitionCount != 2 {
		t.Fatalf("after second success: interval=%d reps=%d, want 6/2", item.IntervalDays, item.RepetitionCount)
	}

	// Third success: interval × ease.
	item = Update(item, 5, testNow)
	if item.RepetitionCount != 3 {
		t.Fatalf("reps = %d, want 3", item.RepetitionCount)
	}
	if item.IntervalDays != 16 { // round(6 × 2.6)
		t.Errorf("interval = %d, want 16", item.IntervalDays)
	}

	// Two more successes keep multiplying; the interval only grows.
	for i := 0; i < 2; i++ {
		prev := item.IntervalDays
		item = Update(item, 5, testNow)
		if item.IntervalDays <= prev {
			t.Fatalf("review %d: interval %d did not grow past %d", item.RepetitionCount, item.IntervalDays, prev)
		}
	}
	if item.RepetitionCount != 5 {
		t.Errorf("reps = %d, want 5 after five successes", item.RepetitionCount)
	}
}

func TestUpdate_WorkedExamples(t *testing.T) {
	// update(item{ease:2.5, interval:6, reps:2}, quality:5) → interval 15,
	// reps 3, ease 2.6.
	item := ReviewItem{Key: testKey("u1"), EaseFactor: 2.5, IntervalDays: 6, RepetitionCount: 2}
	got := Update(item, 5, testNow)
	if got.IntervalDays != 15 {
		t.Errorf("interval = %d, want 15", got.IntervalDays)
	}
	if got.RepetitionCount != 3 {
		t.Errorf("reps = %d, want 3", got.RepetitionCount)
	}
	if math.Abs(got.EaseFactor-2.6) > 1e-9 {
		t.Errorf("ease = %v, want 2.6", got.EaseFactor)
	}
	if got.LastQuality != 5 {
		t.Errorf("lastQuality = %d, want 5", got.LastQuality)
	}

	// update(same, quality:1) → interval 1, reps 0, ease unchanged.
	got = Update(item, 1, testNow)
	if got.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", got.IntervalDays)
	}
	if got.RepetitionCount != 0 {
		t.Errorf("reps = %d, want 0", got.RepetitionCount)
	}
	if got.EaseFactor != 2.5 {
		t.Errorf("ease = %v, want unchanged 2.5", got.EaseFactor)
	}
}

func TestUpdate_FailureResetsProgress(t *testing.T) {
	item := ReviewItem{Key: testKey("u1"), EaseFactor: 2.8, IntervalDays: 42, RepetitionCount: 7}
	for quality := 0; quality < 3; quality++ {
		got := Update(item, quality, testNow)
		if got.RepetitionCount != 0 {
			t.Errorf("quality %d: reps = %d, want 0", quality, got.RepetitionCount)
		}
		if got.IntervalDays != 1 {
			t.Errorf("quality %d: interval = %d, want 1", quality, got.IntervalDays)
		}
		if got.EaseFactor != 2.8 {
			t.Errorf("quality %d: ease = %v, want unchanged", quality, got.EaseFactor)
		}
	}
}

func TestUpdate_EaseFloorInvariant(t *testing.T) {
	item := NewReviewItem(testKey("u1"), testNow)

	// Grind quality 3 (the harshest passing grade) far past the floor.
	for i := 0; i < 50; i++ {
		item = Update(item, 3, testNow)
		if item.EaseFactor < MinEaseFactor {
			t.Fatalf("iteration %d: ease %v below floor", i, item.EaseFactor)
		}
		if item.IntervalDays < 1 {
			t.Fatalf("iteration %d: interval %d below 1", i, item.IntervalDays)
		}
	}
	if item.EaseFactor != MinEaseFactor {
		t.Errorf("ease = %v, want pinned at %v", item.EaseFactor, MinEaseFactor)
	}
}

func TestUpdate_RandomQualitySequencesHoldInvariants(t *testing.T) {
	// Mixed failure/success runs must never break the floor or interval
	// invariants regardless of order.
	sequences := [][]int{
		{5, 5, 0, 5, 3, 3, 3, 1, 4},
		{0, 0, 0, 0, 0},
		{3, 0, 3, 0, 3, 0, 3},
		{5, 4, 3, 2, 1, 0, 5, 4, 3},
	}
	for _, seq := range sequences {
		item := NewReviewItem(testKey("u1"), testNow)
		for _, q := range seq {
			item = Update(item, q, testNow)
			if item.EaseFactor < MinEaseFactor {
				t.Fatalf("sequence %v: ease %v below floor", seq, item.EaseFactor)
			}
			if item.IntervalDays < 1 {
				t.Fatalf("sequence %v: interval %d below 1", seq, item.IntervalDays)
			}
		}
	}
}

func TestUpdate_ClampsQuality(t *testing.T) {
	item := NewReviewItem(testKey("u1"), testNow)
	got := Update(item, 9, testNow)
	if got.LastQuality != 5 {
		t.Errorf("lastQuality = %d, want clamped to 5", got.LastQuality)
	}
	got = Update(item, -3, testNow)
	if got.LastQuality != 0 {
		t.Errorf("lastQuality = %d, want clamped to 0", got.LastQuality)
	}
}

func TestDueItems_FilterAndOrder(t *testing.T) {
	day := func(offset int) time.Time { return testNow.AddDate(0, 0, offset) }

	items := []ReviewItem{
		{Key: testKey("a"), DueDate: day(1), EaseFactor: 2.5},  // not due
		{Key: testKey("b"), DueDate: day(-2), EaseFactor: 2.5}, // due, older
		{Key: testKey("c"), DueDate: day(0), EaseFactor: 1.9},  // due today, hard
		{Key: testKey("d"), DueDate: day(0), EaseFactor: 2.7},  // due today, easy
		{Key: testKey("e"), DueDate: day(-2), EaseFactor: 1.3}, // due, older, hardest
	}

	due := DueItems(items, testNow)
	if len(due) != 4 {
		t.Fatalf("got %d due items, want 4", len(due))
	}

	wantOrder := []string{"e", "b", "c", "d"}
	for i, want := range wantOrder {
		if due[i].Key.UserID != want {
			t.Errorf("position %d: got %q, want %q", i, due[i].Key.UserID, want)
		}
	}
}

func TestDueItems_EmptyInput(t *testing.T) {
	if due := DueItems(nil, testNow); len(due) != 0 {
		t.Errorf("got %d items from nil input", len(due))
	}
}

func TestDeriveQuality(t *testing.T) {
	tests := []struct {
		name string
		sig  AnswerSignals
		want int
	}{
		{"fast correct", AnswerSignals{Correct: true, MatchType: conjugation.MatchExact, LatencyMs: 3000}, 5},
		{"slow correct", AnswerSignals{Correct: true, MatchType: conjugation.MatchExact, LatencyMs: 20000}, 4},
		{"hinted correct", AnswerSignals{Correct: true, MatchType: conjugation.MatchExact, UsedHint: true, LatencyMs: 2000}, 4},
		{"retry correct", AnswerSignals{Correct: true, MatchType: conjugation.MatchExact, Retry: true}, 3},
		{"accent only", AnswerSignals{Correct: true, MatchType: conjugation.MatchAccentInsensitive}, 2},
		{"classified miss", AnswerSignals{MatchType: conjugation.MatchMismatch, Classified: true}, 1},
		{"unrecognizable", AnswerSignals{MatchType: conjugation.MatchMismatch}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveQuality(tt.sig); got != tt.want {
				t.Errorf("DeriveQuality(%+v) = %d, want %d", tt.sig, got, tt.want)
			}
		})
	}
}
