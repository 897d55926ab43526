package analyzer

import "github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"

// Heuristic is a rule-based error classifier. Returns a Classification
// and true if the rule applies; (zero, false) otherwise.
type Heuristic interface {
	Name() string
	Classify(e *conjugation.Engine, in *Input) (Classification, bool)
}

// DefaultHeuristics returns the heuristics in precedence order. First
// match wins: a well-formed answer for the wrong person is a stronger,
// more specific signal than the broader tense/mood/stem tests that might
// also fire on the same string.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		&PersonConfusion{},
		&TenseConfusion{},
		&MoodConfusion{},
		&StemChangeError{},
		&IrregularFormError{},
		&AccentError{},
	}
}

// Analyzer classifies incorrect answers into teaching categories.
// Pure classification over already-computed forms; no side effects.
type Analyzer struct {
	engine     *conjugation.Engine
	heuristics []Heuristic
}

// New creates an analyzer backed by the given conjugation engine.
func New(engine *conjugation.Engine) *Analyzer {
	return &Analyzer{
		engine:     engine,
		heuristics: DefaultHeuristics(),
	}
}

// Classify runs the heuristic chain over a non-exact submission and
// returns the first match, or an UNKNOWN classification when no rule
// applies.
func (a *Analyzer) Classify(correct conjugation.VerbForm, userAnswer string, validation conjugation.ValidationResult) Classification {
	in := &Input{
		Correct:    correct,
		UserAnswer: userAnswer,
		Validation: validation,
	}
	for _, h := range a.heuristics {
		if c, ok := h.Classify(a.engine, in); ok {
			return c
		}
	}
	return Classification{
		Category: CategoryUnknown,
		Hint:     "Compare your answer carefully with the expected form of " + correct.Infinitive + ".",
	}
}

// matches reports whether the user's answer exactly equals the given
// surface form after normalization. Accent-sensitive on purpose: "pense"
// must not be read as an unaccented "pensé" (preterite) when it is far
// more likely a stem-change slip for "piense".
func matches(surface, userAnswer string) bool {
	return conjugation.CompareAnswer(surface, userAnswer, conjugation.ValidateOptions{AccentSensitive: true}).IsCorrect
}
