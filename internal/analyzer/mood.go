package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// MoodConfusion detects an answer that is a well-formed indicative
// conjugation of the same verb and person. The tense-equivalent indicative
// is tried first (present indicative for present subjunctive, preterite
// for the imperfect forms); the other indicative tense is a fallback.
// Skipped, not failed, when the indicative lookup cannot produce a form.
type MoodConfusion struct{}

func (h *MoodConfusion) Name() string { return "mood-confusion" }

func (h *MoodConfusion) Classify(e *conjugation.Engine, in *Input) (Classification, bool) {
	for _, indTense := range h.lookupOrder(in.Correct.Tense) {
		surface, ok := e.IndicativeForm(in.Correct.Infinitive, indTense, in.Correct.Person)
		if !ok {
			continue
		}
		if matches(surface, in.UserAnswer) {
			return Classification{
				Category:   CategoryMoodConfusion,
				Confidence: 0.8,
				Hint: fmt.Sprintf("%q is the indicative mood; this sentence calls for the %s.",
					surface, in.Correct.Tense.DisplayName()),
			}, true
		}
	}
	return Classification{}, false
}

func (h *MoodConfusion) lookupOrder(tense conjugation.Tense) []conjugation.IndicativeTense {
	if tense == conjugation.TensePresent || tense == conjugation.TensePresentPerfect {
		return []conjugation.IndicativeTense{conjugation.IndicativePresent, conjugation.IndicativePreterite}
	}
	return []conjugation.IndicativeTense{conjugation.IndicativePreterite, conjugation.IndicativePresent}
}
