package analyzer

import (
	"testing"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

func testAnalyzer(t *testing.T) (*Analyzer, *conjugation.Engine) {
	t.Helper()
	table, err := conjugation.DefaultRuleTable()
	if err != nil {
		t.Fatalf("build rule table: %v", err)
	}
	engine := conjugation.NewEngine(table)
	return New(engine), engine
}

// classify runs validation and classification the way the session does.
func classify(t *testing.T, a *Analyzer, e *conjugation.Engine, infinitive string, tense conjugation.Tense, person conjugation.Person, answer string) Classification {
	t.Helper()
	form, err := e.Conjugate(infinitive, tense, person)
	if err != nil {
		t.Fatalf("Conjugate(%s, %s, %s): %v", infinitive, tense, person, err)
	}
	validation, err := e.Validate(infinitive, tense, person, answer, conjugation.ValidateOptions{})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return a.Classify(form, answer, validation)
}

func TestClassify_PersonConfusion(t *testing.T) {
	a, e := testAnalyzer(t)

	// "hables" is the tú form; the sentence wanted yo.
	c := classify(t, a, e, "hablar", conjugation.TensePresent, conjugation.PersonYo, "hables")
	if c.Category != CategoryPersonConfusion {
		t.Fatalf("got %q, want person_confusion", c.Category)
	}
	if c.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", c.Confidence)
	}
	if c.Hint == "" {
		t.Error("hint is empty")
	}
}

func TestClassify_TenseConfusion(t *testing.T) {
	a, e := testAnalyzer(t)

	// "hablara" is the imperfect (-ra) yo form; the sentence wanted present.
	c := classify(t, a, e, "hablar", conjugation.TensePresent, conjugation.PersonYo, "hablara")
	if c.Category != CategoryTenseConfusion {
		t.Fatalf("got %q, want tense_confusion", c.Category)
	}
	if c.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", c.Confidence)
	}
}

func TestClassify_MoodConfusion(t *testing.T) {
	a, e := testAnalyzer(t)

	tests := []struct {
		infinitive string
		tense      conjugation.Tense
		person     conjugation.Person
		answer     string
	}{
		// Present indicative where present subjunctive was needed.
		{"tener", conjugation.TensePresent, conjugation.PersonYo, "tengo"},
		// Preterite hablé for hable, the classic subjunctive slip.
		{"hablar", conjugation.TensePresent, conjugation.PersonYo, "hablé"},
		// Preterite where imperfect subjunctive was needed.
		{"ser", conjugation.TenseImperfectRa, conjugation.PersonEl, "fue"},
	}
	for _, tt := range tests {
		c := classify(t, a, e, tt.infinitive, tt.tense, tt.person, tt.answer)
		if c.Category != CategoryMoodConfusion {
			t.Errorf("classify(%s, %s, %s, %q) = %q, want mood_confusion",
				tt.infinitive, tt.tense, tt.person, tt.answer, c.Category)
		}
	}
}

func TestClassify_StemChangeError(t *testing.T) {
	a, e := testAnalyzer(t)

	tests := []struct {
		infinitive string
		person     conjugation.Person
		answer     string
	}{
		{"pensar", conjugation.PersonYo, "pense"},
		{"dormir", conjugation.PersonNosotros, "dormamos"},
		{"pedir", conjugation.PersonTu, "pedas"},
	}
	for _, tt := range tests {
		c := classify(t, a, e, tt.infinitive, conjugation.TensePresent, tt.person, tt.answer)
		if c.Category != CategoryStemChange {
			t.Errorf("classify(%s, present, %s, %q) = %q, want stem_change_error",
				tt.infinitive, tt.person, tt.answer, c.Category)
		}
		if c.Confidence != 0.85 {
			t.Errorf("confidence = %v, want 0.85", c.Confidence)
		}
	}
}

func TestClassify_IrregularFormError(t *testing.T) {
	a, e := testAnalyzer(t)

	// "tena" is tener with the regular rules applied.
	c := classify(t, a, e, "tener", conjugation.TensePresent, conjugation.PersonYo, "tena")
	if c.Category != CategoryIrregularForm {
		t.Fatalf("got %q, want irregular_form_error", c.Category)
	}
	if c.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", c.Confidence)
	}
}

func TestClassify_AccentError(t *testing.T) {
	a, e := testAnalyzer(t)

	// Accent-insensitive matches validate as correct but are re-surfaced
	// as a teaching category when the analyzer runs.
	c := classify(t, a, e, "hablar", conjugation.TensePresent, conjugation.PersonVosotros, "hableis")
	if c.Category != CategoryAccent {
		t.Fatalf("got %q, want accent_error", c.Category)
	}
	if c.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", c.Confidence)
	}
}

func TestClassify_Unknown(t *testing.T) {
	a, e := testAnalyzer(t)

	c := classify(t, a, e, "hablar", conjugation.TensePresent, conjugation.PersonYo, "garbanzo")
	if c.Category != CategoryUnknown {
		t.Fatalf("got %q, want unknown", c.Category)
	}
	if c.Confidence != 0 {
		t.Errorf("confidence = %v, want 0 for unknown", c.Confidence)
	}
}

func TestClassify_PersonBeforeTense(t *testing.T) {
	// A synthetic paradigm where the answer satisfies both the person and
	// the tense heuristic: "mirra" is the tú present form AND the yo
	// imperfect form. Precedence must pick person confusion.
	data := conjugation.SeedTableData()
	data.Irregular["mirrar"] = map[conjugation.Tense]conjugation.Paradigm{
		conjugation.TensePresent:     {"mirre", "mirra", "mirre", "mirremos", "mirréis", "mirren"},
		conjugation.TenseImperfectRa: {"mirra", "mirraras", "mirrara", "mirráramos", "mirrarais", "mirraran"},
	}
	table, err := conjugation.NewRuleTable(data)
	if err != nil {
		t.Fatalf("build rule table: %v", err)
	}
	e := conjugation.NewEngine(table)
	a := New(e)

	c := classify(t, a, e, "mirrar", conjugation.TensePresent, conjugation.PersonYo, "mirra")
	if c.Category != CategoryPersonConfusion {
		t.Fatalf("got %q, want person_confusion to win over tense_confusion", c.Category)
	}
}

func TestClassify_CompoundTenseConfusion(t *testing.T) {
	a, e := testAnalyzer(t)

	// Pluperfect auxiliary where present perfect was needed.
	c := classify(t, a, e, "comer", conjugation.TensePresentPerfect, conjugation.PersonYo, "hubiera comido")
	if c.Category != CategoryTenseConfusion {
		t.Fatalf("got %q, want tense_confusion", c.Category)
	}
}
