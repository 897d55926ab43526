package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// IrregularFormError detects a regularized rendering of an irregular verb:
// the learner applied the regular rules where an irregular paradigm wins.
type IrregularFormError struct{}

func (h *IrregularFormError) Name() string { return "irregular-form-error" }

func (h *IrregularFormError) Classify(e *conjugation.Engine, in *Input) (Classification, bool) {
	if !in.Correct.Irregular {
		return Classification{}, false
	}
	regularized, err := e.ConjugateRegular(in.Correct.Infinitive, in.Correct.Tense, in.Correct.Person)
	if err != nil || !matches(regularized, in.UserAnswer) {
		return Classification{}, false
	}
	return Classification{
		Category:   CategoryIrregularForm,
		Confidence: 0.8,
		Hint: fmt.Sprintf("%s is irregular in the %s — the regular pattern does not apply here.",
			in.Correct.Infinitive, in.Correct.Tense.DisplayName()),
	}, true
}
