package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// StemChangeError detects an answer built from the unmodified stem with
// the correct endings, i.e. the learner applied the regular pattern to a
// stem-changing verb.
type StemChangeError struct{}

func (h *StemChangeError) Name() string { return "stem-change-error" }

func (h *StemChangeError) Classify(e *conjugation.Engine, in *Input) (Classification, bool) {
	sc, ok := e.Table().StemChangeFor(in.Correct.Infinitive)
	if !ok {
		return Classification{}, false
	}
	// Only meaningful when the target form actually carries the change.
	if in.Correct.StemChange == conjugation.StemChangeNone {
		return Classification{}, false
	}
	plain, err := e.ConjugateRegular(in.Correct.Infinitive, in.Correct.Tense, in.Correct.Person)
	if err != nil || !matches(plain, in.UserAnswer) {
		return Classification{}, false
	}
	return Classification{
		Category:   CategoryStemChange,
		Confidence: 0.85,
		Hint: fmt.Sprintf("%s changes its stem (%s) in this form — %q keeps the unchanged stem.",
			in.Correct.Infinitive, sc.Type, in.Validation.NormalizedUser),
	}, true
}
