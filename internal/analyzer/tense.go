package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// TenseConfusion detects an answer matching the same verb and person in a
// different subjunctive tense.
type TenseConfusion struct{}

func (h *TenseConfusion) Name() string { return "tense-confusion" }

func (h *TenseConfusion) Classify(e *conjugation.Engine, in *Input) (Classification, bool) {
	for _, tense := range conjugation.AllTenses() {
		if tense == in.Correct.Tense {
			continue
		}
		form, err := e.Conjugate(in.Correct.Infinitive, tense, in.Correct.Person)
		if err != nil {
			continue
		}
		if matches(form.Surface, in.UserAnswer) {
			return Classification{
				Category:   CategoryTenseConfusion,
				Confidence: 0.85,
				Hint: fmt.Sprintf("That is the %s — this sentence needs the %s.",
					tense.DisplayName(), in.Correct.Tense.DisplayName()),
			}, true
		}
	}
	return Classification{}, false
}
