package adaptive

import (
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
)

// DefaultWindowSize is how many recent outcomes the controller considers.
const DefaultWindowSize = 20

// Outcome is a single graded answer as seen by the difficulty controller.
type Outcome struct {
	Correct  bool
	Category analyzer.Category
	At       time.Time
}

// Window is a bounded history of the most recent outcomes, oldest first.
// The zero value is unusable; build one with NewWindow. Windows are
// value types: Push returns a new Window, so snapshots can be persisted
// and restored without aliasing.
type Window struct {
	outcomes []Outcome
	size     int
}

// NewWindow returns an empty window holding up to size outcomes. A size
// below 1 falls back to DefaultWindowSize.
func NewWindow(size int) Window {
	if size < 1 {
		size = DefaultWindowSize
	}
	return Window{size: size}
}

// Restore rebuilds a window from persisted outcomes, keeping only the
// newest size entries.
func Restore(size int, outcomes []Outcome) Window {
	w := NewWindow(size)
	if len(outcomes) > w.size {
		outcomes = outcomes[len(outcomes)-w.size:]
	}
	w.outcomes = append(w.outcomes, outcomes...)
	return w
}

// Push appends an outcome, evicting the oldest entry once the window is
// full.
func (w Window) Push(o Outcome) Window {
	out := make([]Outcome, len(w.outcomes), len(w.outcomes)+1)
	copy(out, w.outcomes)
	out = append(out, o)
	if len(out) > w.size {
		out = out[1:]
	}
	return Window{outcomes: out, size: w.size}
}

// Len reports how many outcomes the window currently holds.
func (w Window) Len() int { return len(w.outcomes) }

// Size reports the window's capacity.
func (w Window) Size() int { return w.size }

// Full reports whether the window has reached capacity.
func (w Window) Full() bool { return len(w.outcomes) == w.size }

// Outcomes returns a copy of the held outcomes, oldest first.
func (w Window) Outcomes() []Outcome {
	out := make([]Outcome, len(w.outcomes))
	copy(out, w.outcomes)
	return out
}

// Accuracy is the fraction of correct outcomes in the window, 0 when
// empty.
func (w Window) Accuracy() float64 {
	if len(w.outcomes) == 0 {
		return 0
	}
	correct := 0
	for _, o := range w.outcomes {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(w.outcomes))
}

// CategoryCounts tallies the error categories of the incorrect outcomes.
func (w Window) CategoryCounts() map[analyzer.Category]int {
	counts := make(map[analyzer.Category]int)
	for _, o := range w.outcomes {
		if !o.Correct && o.Category != "" {
			counts[o.Category]++
		}
	}
	return counts
}

// dominantCategory returns the most frequent error category, breaking
// ties in favor of the category seen most recently. Empty when the
// window holds no classified errors.
func (w Window) dominantCategory() analyzer.Category {
	counts := w.CategoryCounts()
	if len(counts) == 0 {
		return ""
	}
	lastSeen := make(map[analyzer.Category]int)
	for i, o := range w.outcomes {
		if !o.Correct && o.Category != "" {
			lastSeen[o.Category] = i
		}
	}
	var best analyzer.Category
	bestCount, bestSeen := -1, -1
	for cat, n := range counts {
		if n > bestCount || (n == bestCount && lastSeen[cat] > bestSeen) {
			best, bestCount, bestSeen = cat, n, lastSeen[cat]
		}
	}
	return best
}
