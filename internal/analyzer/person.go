package analyzer

import (
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

// PersonConfusion detects an answer that is the correct conjugation of the
// same verb and tense, but for a different person. The answer is
// well-formed; only the target was wrong.
type PersonConfusion struct{}

func (h *PersonConfusion) Name() string { return "person-confusion" }

func (h *PersonConfusion) Classify(e *conjugation.Engine, in *Input) (Classification, bool) {
	for _, person := range conjugation.AllPersons() {
		if person == in.Correct.Person {
			continue
		}
		form, err := e.Conjugate(in.Correct.Infinitive, in.Correct.Tense, person)
		if err != nil {
			continue
		}
		if matches(form.Surface, in.UserAnswer) {
			return Classification{
				Category:   CategoryPersonConfusion,
				Confidence: 0.9,
				Hint: fmt.Sprintf("You conjugated for %q — this sentence needs %q.",
					person.DisplayName(), in.Correct.Person.DisplayName()),
			}, true
		}
	}
	return Classification{}, false
}
