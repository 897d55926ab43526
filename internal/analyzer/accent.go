package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// AccentError re-surfaces a diacritic-only miss as a teaching category.
// The validator has already established the match type, so this heuristic
// is unambiguous.
type AccentError struct{}

func (h *AccentError) Name() string { return "accent-error" }

func (h *AccentError) Classify(_ *conjugation.Engine, in *Input) (Classification, bool) {
	if in.Validation.MatchType != conjugation.MatchAccentInsensitive {
		return Classification{}, false
	}
	return Classification{
		Category:   CategoryAccent,
		Confidence: 0.95,
		Hint:       fmt.Sprintf("Almost — watch the written accent: %q.", in.Validation.NormalizedCorrect),
	}, true
}
