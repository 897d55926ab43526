package adaptive

import (
	"testing"
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func fill(c *Controller, w Window, outcomes ...Outcome) Window {
	for i, o := range outcomes {
		w = c.RecordOutcome(w, o.Correct, o.Category, t0.Add(time.Duration(i)*time.Minute))
	}
	return w
}

func repeat(o Outcome, n int) []Outcome {
	out := make([]Outcome, n)
	for i := range out {
		out[i] = o
	}
	return out
}

func TestWindow_EvictsOldest(t *testing.T) {
	w := NewWindow(3)
	for i := 0; i < 5; i++ {
		w = w.Push(Outcome{Correct: i >= 2, At: t0.Add(time.Duration(i) * time.Minute)})
	}
	if w.Len() != 3 {
		t.Fatalf("len = %d, want 3", w.Len())
	}
	// Only the last three pushes (all correct) survive.
	if got := w.Accuracy(); got != 1.0 {
		t.Errorf("accuracy = %v, want 1.0 after eviction", got)
	}
}

func TestWindow_PushDoesNotAliasPrevious(t *testing.T) {
	w1 := NewWindow(5)
	w1 = w1.Push(Outcome{Correct: true})
	w2 := w1.Push(Outcome{Correct: false})
	if w1.Len() != 1 {
		t.Errorf("earlier snapshot mutated: len = %d, want 1", w1.Len())
	}
	if w2.Len() != 2 {
		t.Errorf("len = %d, want 2", w2.Len())
	}
}

func TestWindow_Accuracy(t *testing.T) {
	w := NewWindow(10)
	if got := w.Accuracy(); got != 0 {
		t.Errorf("empty accuracy = %v, want 0", got)
	}
	w = w.Push(Outcome{Correct: true})
	w = w.Push(Outcome{Correct: true})
	w = w.Push(Outcome{Correct: false, Category: analyzer.CategoryPersonConfusion})
	w = w.Push(Outcome{Correct: false, Category: analyzer.CategoryTenseConfusion})
	if got := w.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestRestore_KeepsNewest(t *testing.T) {
	outcomes := repeat(Outcome{Correct: false, Category: analyzer.CategoryAccent}, 25)
	w := Restore(20, outcomes)
	if w.Len() != 20 {
		t.Errorf("len = %d, want 20", w.Len())
	}
	if !w.Full() {
		t.Error("restored window should be full")
	}
}

func TestNextDifficulty_HoldsUnderMinSamples(t *testing.T) {
	c := NewController(DefaultConfig())
	w := fill(c, c.NewWindow(), repeat(Outcome{Correct: true}, 4)...)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Tier != TierMedium {
		t.Errorf("tier = %v, want hold at MEDIUM with 4 samples", plan.Tier)
	}
}

func TestNextDifficulty_Escalates(t *testing.T) {
	c := NewController(DefaultConfig())
	// 9 correct, 1 wrong: accuracy 0.9.
	w := fill(c, c.NewWindow(), append(repeat(Outcome{Correct: true}, 9),
		Outcome{Correct: false, Category: analyzer.CategoryStemChange})...)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Tier != TierHard {
		t.Errorf("tier = %v, want HARD", plan.Tier)
	}
	if plan2 := c.NextDifficulty(w, TierHard); plan2.Tier != TierHard {
		t.Errorf("tier = %v, want capped at HARD", plan2.Tier)
	}
}

func TestNextDifficulty_Deescalates(t *testing.T) {
	c := NewController(DefaultConfig())
	// 3 correct, 7 wrong: accuracy 0.3.
	w := fill(c, c.NewWindow(), append(repeat(Outcome{Correct: true}, 3),
		repeat(Outcome{Correct: false, Category: analyzer.CategoryTenseConfusion}, 7)...)...)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Tier != TierEasy {
		t.Errorf("tier = %v, want EASY", plan.Tier)
	}
	if plan2 := c.NextDifficulty(w, TierEasy); plan2.Tier != TierEasy {
		t.Errorf("tier = %v, want floored at EASY", plan2.Tier)
	}
}

func TestNextDifficulty_HoldsInMiddleBand(t *testing.T) {
	c := NewController(DefaultConfig())
	// 7 correct, 3 wrong: accuracy 0.7, between the thresholds.
	w := fill(c, c.NewWindow(), append(repeat(Outcome{Correct: true}, 7),
		repeat(Outcome{Correct: false, Category: analyzer.CategoryMoodConfusion}, 3)...)...)

	plan := c.NextDifficulty(w, TierHard)
	if plan.Tier != TierHard {
		t.Errorf("tier = %v, want hold at HARD", plan.Tier)
	}
}

func TestNextDifficulty_EmptyCurrentDefaultsMedium(t *testing.T) {
	c := NewController(DefaultConfig())
	plan := c.NextDifficulty(c.NewWindow(), "")
	if plan.Tier != TierMedium {
		t.Errorf("tier = %v, want default MEDIUM", plan.Tier)
	}
}

func TestNextDifficulty_EmphasisMostFrequent(t *testing.T) {
	c := NewController(DefaultConfig())
	w := fill(c, c.NewWindow(),
		Outcome{Correct: false, Category: analyzer.CategoryPersonConfusion},
		Outcome{Correct: false, Category: analyzer.CategoryStemChange},
		Outcome{Correct: true},
		Outcome{Correct: false, Category: analyzer.CategoryStemChange},
		Outcome{Correct: true},
	)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Emphasis != analyzer.CategoryStemChange {
		t.Errorf("emphasis = %v, want STEM_CHANGE_ERROR", plan.Emphasis)
	}
}

func TestNextDifficulty_EmphasisTieGoesToMostRecent(t *testing.T) {
	c := NewController(DefaultConfig())
	w := fill(c, c.NewWindow(),
		Outcome{Correct: false, Category: analyzer.CategoryPersonConfusion},
		Outcome{Correct: false, Category: analyzer.CategoryPersonConfusion},
		Outcome{Correct: false, Category: analyzer.CategoryAccent},
		Outcome{Correct: false, Category: analyzer.CategoryAccent},
	)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Emphasis != analyzer.CategoryAccent {
		t.Errorf("emphasis = %v, want tie broken toward most recent ACCENT_ERROR", plan.Emphasis)
	}
}

func TestNextDifficulty_NoErrorsNoEmphasis(t *testing.T) {
	c := NewController(DefaultConfig())
	w := fill(c, c.NewWindow(), repeat(Outcome{Correct: true}, 6)...)

	plan := c.NextDifficulty(w, TierMedium)
	if plan.Emphasis != "" {
		t.Errorf("emphasis = %q, want empty", plan.Emphasis)
	}
}

func TestRecordOutcome_DropsCategoryOnCorrect(t *testing.T) {
	c := NewController(DefaultConfig())
	w := c.RecordOutcome(c.NewWindow(), true, analyzer.CategoryTenseConfusion, t0)
	if counts := w.CategoryCounts(); len(counts) != 0 {
		t.Errorf("counts = %v, want none for a correct answer", counts)
	}
}

func TestNewController_FillsDefaults(t *testing.T) {
	c := NewController(Config{})
	cfg := c.Config()
	if cfg != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}
