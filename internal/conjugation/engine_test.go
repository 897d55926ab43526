package conjugation

import (
	"errors"
	"testing"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := DefaultRuleTable()
	if err != nil {
		t.Fatalf("build rule table: %v", err)
	}
	return NewEngine(table)
}

func TestConjugate_RegularPresent(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		person     Person
		want       string
	}{
		{"hablar", PersonYo, "hable"},
		{"hablar", PersonTu, "hables"},
		{"hablar", PersonNosotros, "hablemos"},
		{"hablar", PersonVosotros, "habléis"},
		{"comer", PersonYo, "coma"},
		{"comer", PersonEllos, "coman"},
		{"vivir", PersonEl, "viva"},
		{"vivir", PersonVosotros, "viváis"},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, TensePresent, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s): %v", tt.infinitive, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, present, %s) = %q, want %q", tt.infinitive, tt.person, form.Surface, tt.want)
		}
		if form.Irregular {
			t.Errorf("%s marked irregular", tt.infinitive)
		}
	}
}

func TestConjugate_RegularImperfect(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		tense      Tense
		person     Person
		want       string
	}{
		{"hablar", TenseImperfectRa, PersonYo, "hablara"},
		{"hablar", TenseImperfectRa, PersonNosotros, "habláramos"},
		{"hablar", TenseImperfectSe, PersonTu, "hablases"},
		{"comer", TenseImperfectRa, PersonEllos, "comieran"},
		{"comer", TenseImperfectSe, PersonNosotros, "comiésemos"},
		{"vivir", TenseImperfectRa, PersonEl, "viviera"},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, tt.tense, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s, %s): %v", tt.infinitive, tt.tense, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, %s, %s) = %q, want %q", tt.infinitive, tt.tense, tt.person, form.Surface, tt.want)
		}
	}
}

func TestConjugate_StemChanges(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		tense      Tense
		person     Person
		want       string
		changed    StemChangeType
	}{
		// Boot pattern: nosotros/vosotros keep the plain stem.
		{"pensar", TensePresent, PersonYo, "piense", StemChangeEIe},
		{"pensar", TensePresent, PersonNosotros, "pensemos", StemChangeNone},
		{"volver", TensePresent, PersonTu, "vuelvas", StemChangeOUe},
		{"volver", TensePresent, PersonVosotros, "volváis", StemChangeNone},
		// -ir verbs raise the vowel outside the boot.
		{"dormir", TensePresent, PersonYo, "duerma", StemChangeOUe},
		{"dormir", TensePresent, PersonNosotros, "durmamos", StemChangeOUe},
		{"sentir", TensePresent, PersonVosotros, "sintáis", StemChangeEIe},
		{"pedir", TensePresent, PersonYo, "pida", StemChangeEI},
		{"pedir", TensePresent, PersonNosotros, "pidamos", StemChangeEI},
		// The raised vowel carries through the imperfect.
		{"dormir", TenseImperfectRa, PersonEl, "durmiera", StemChangeOUe},
		{"sentir", TenseImperfectSe, PersonYo, "sintiese", StemChangeEIe},
		{"pedir", TenseImperfectRa, PersonEllos, "pidieran", StemChangeEI},
		// -ar/-er stem changers have no imperfect alternation.
		{"pensar", TenseImperfectRa, PersonYo, "pensara", StemChangeNone},
		{"volver", TenseImperfectSe, PersonTu, "volvieses", StemChangeNone},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, tt.tense, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s, %s): %v", tt.infinitive, tt.tense, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, %s, %s) = %q, want %q", tt.infinitive, tt.tense, tt.person, form.Surface, tt.want)
		}
		if form.StemChange != tt.changed {
			t.Errorf("Conjugate(%s, %s, %s) stem change = %q, want %q", tt.infinitive, tt.tense, tt.person, form.StemChange, tt.changed)
		}
	}
}

func TestConjugate_Irregulars(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		tense      Tense
		person     Person
		want       string
	}{
		{"ser", TensePresent, PersonYo, "sea"},
		{"ser", TenseImperfectRa, PersonNosotros, "fuéramos"},
		{"estar", TensePresent, PersonTu, "estés"},
		{"ir", TensePresent, PersonEllos, "vayan"},
		{"dar", TensePresent, PersonYo, "dé"},
		{"dar", TensePresent, PersonVosotros, "deis"},
		{"tener", TensePresent, PersonYo, "tenga"},
		{"tener", TenseImperfectRa, PersonYo, "tuviera"},
		{"decir", TensePresent, PersonNosotros, "digamos"},
		{"decir", TenseImperfectRa, PersonEllos, "dijeran"},
		{"decir", TenseImperfectSe, PersonNosotros, "dijésemos"},
		{"saber", TensePresent, PersonEl, "sepa"},
		{"poder", TensePresent, PersonYo, "pueda"},
		{"poder", TenseImperfectRa, PersonYo, "pudiera"},
		{"querer", TenseImperfectSe, PersonTu, "quisieses"},
		{"oír", TensePresent, PersonYo, "oiga"},
		{"oír", TenseImperfectRa, PersonNosotros, "oyéramos"},
		{"jugar", TensePresent, PersonNosotros, "juguemos"},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, tt.tense, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s, %s): %v", tt.infinitive, tt.tense, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, %s, %s) = %q, want %q", tt.infinitive, tt.tense, tt.person, form.Surface, tt.want)
		}
	}
}

func TestConjugate_CompoundTenses(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		tense      Tense
		person     Person
		want       string
		irregular  bool
	}{
		{"hablar", TensePresentPerfect, PersonYo, "haya hablado", false},
		{"comer", TensePresentPerfect, PersonNosotros, "hayamos comido", false},
		{"vivir", TensePluperfect, PersonTu, "hubieras vivido", false},
		{"hacer", TensePresentPerfect, PersonEl, "haya hecho", true},
		{"escribir", TensePluperfect, PersonEllos, "hubieran escrito", true},
		{"ver", TensePresentPerfect, PersonVosotros, "hayáis visto", true},
		{"leer", TensePluperfect, PersonYo, "hubiera leído", true},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, tt.tense, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, %s, %s): %v", tt.infinitive, tt.tense, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, %s, %s) = %q, want %q", tt.infinitive, tt.tense, tt.person, form.Surface, tt.want)
		}
		if form.Irregular != tt.irregular {
			t.Errorf("Conjugate(%s, %s, %s) irregular = %v, want %v", tt.infinitive, tt.tense, tt.person, form.Irregular, tt.irregular)
		}
	}
}

func TestConjugate_Orthographic(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		person     Person
		want       string
	}{
		{"buscar", PersonYo, "busque"},
		{"llegar", PersonTu, "llegues"},
		{"empezar", PersonNosotros, "empecemos"},
		{"vencer", PersonYo, "venza"},
		{"conocer", PersonYo, "conozca"},
		{"escoger", PersonEl, "escoja"},
	}
	for _, tt := range tests {
		form, err := e.Conjugate(tt.infinitive, TensePresent, tt.person)
		if err != nil {
			t.Fatalf("Conjugate(%s, present, %s): %v", tt.infinitive, tt.person, err)
		}
		if form.Surface != tt.want {
			t.Errorf("Conjugate(%s, present, %s) = %q, want %q", tt.infinitive, tt.person, form.Surface, tt.want)
		}
	}
}

func TestConjugate_UnknownVerb(t *testing.T) {
	e := testEngine(t)

	_, err := e.Conjugate("xyz", TensePresent, PersonYo)
	var unknownErr *UnknownVerbError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("got %v, want UnknownVerbError", err)
	}

	_, err = e.Conjugate("", TensePresent, PersonYo)
	if !errors.As(err, &unknownErr) {
		t.Fatalf("got %v for empty infinitive, want UnknownVerbError", err)
	}
}

func TestConjugate_Deterministic(t *testing.T) {
	e := testEngine(t)

	for _, inf := range []string{"hablar", "pensar", "ser", "dormir", "hacer"} {
		for _, tense := range AllTenses() {
			for _, person := range AllPersons() {
				first, err := e.Conjugate(inf, tense, person)
				if err != nil {
					t.Fatalf("Conjugate(%s, %s, %s): %v", inf, tense, person, err)
				}
				second, err := e.Conjugate(inf, tense, person)
				if err != nil {
					t.Fatalf("Conjugate(%s, %s, %s) second call: %v", inf, tense, person, err)
				}
				if first != second {
					t.Errorf("Conjugate(%s, %s, %s) not deterministic: %+v vs %+v", inf, tense, person, first, second)
				}
			}
		}
	}
}

func TestConjugateRegular_IgnoresOverrides(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		want       string
	}{
		{"tener", "tena"},    // regularized, not tenga
		{"pensar", "pense"},  // unmodified stem, not piense
		{"dormir", "dorma"},  // unmodified stem, not duerma
		{"hablar", "hable"},  // regular verbs are unchanged
	}
	for _, tt := range tests {
		got, err := e.ConjugateRegular(tt.infinitive, TensePresent, PersonYo)
		if err != nil {
			t.Fatalf("ConjugateRegular(%s): %v", tt.infinitive, err)
		}
		if got != tt.want {
			t.Errorf("ConjugateRegular(%s, present, yo) = %q, want %q", tt.infinitive, got, tt.want)
		}
	}
}

func TestValidate_MatchTypes(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name    string
		verb    string
		tense   Tense
		person  Person
		answer  string
		opts    ValidateOptions
		correct bool
		match   MatchType
	}{
		{name: "exact", verb: "hablar", tense: TensePresent, person: PersonYo, answer: "hable", correct: true, match: MatchExact},
		{name: "case and whitespace", verb: "hablar", tense: TensePresent, person: PersonYo, answer: "  HABLE ", correct: true, match: MatchExact},
		{name: "missing accent", verb: "hablar", tense: TensePresent, person: PersonVosotros, answer: "hableis", correct: true, match: MatchAccentInsensitive},
		{name: "missing accent strict", verb: "hablar", tense: TensePresent, person: PersonVosotros, answer: "hableis", opts: ValidateOptions{AccentSensitive: true}, correct: false, match: MatchMismatch},
		{name: "wrong form", verb: "hablar", tense: TensePresent, person: PersonYo, answer: "hables", correct: false, match: MatchMismatch},
		{name: "compound whitespace", verb: "hablar", tense: TensePresentPerfect, person: PersonYo, answer: "haya   hablado", correct: true, match: MatchExact},
		{name: "enye not strippable", verb: "soñar", tense: TensePresent, person: PersonYo, answer: "sone", correct: false, match: MatchMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Validate(tt.verb, tt.tense, tt.person, tt.answer, tt.opts)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if res.IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", res.IsCorrect, tt.correct)
			}
			if res.MatchType != tt.match {
				t.Errorf("MatchType = %q, want %q", res.MatchType, tt.match)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	e := testEngine(t)

	first, err := e.Validate("pensar", TensePresent, PersonYo, "piense", ValidateOptions{})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	second, err := e.Validate("pensar", TensePresent, PersonYo, "piense", ValidateOptions{})
	if err != nil {
		t.Fatalf("Validate second call: %v", err)
	}
	if first != second {
		t.Errorf("Validate not idempotent: %+v vs %+v", first, second)
	}
}

func TestValidate_AccentAloneDoesNotSave(t *testing.T) {
	e := testEngine(t)

	// "hablé" is the preterite indicative, a different word from "hable".
	// The added accent must not ride the accent-lenient path.
	res, err := e.Validate("hablar", TensePresent, PersonYo, "hablé", ValidateOptions{})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if res.IsCorrect || res.MatchType != MatchMismatch {
		t.Errorf("hablé for hable = %+v, want mismatch", res)
	}
}

func TestAccentLenientMatch_Directional(t *testing.T) {
	tests := []struct {
		user    string
		correct string
		want    bool
	}{
		{"hableis", "habléis", true},
		{"hablaramos", "habláramos", true},
		{"habléis", "habléis", true},
		{"hablé", "hable", false}, // added accent
		{"hablara", "hablará", true},
		{"piense", "piense", true},
		{"sone", "soñe", false}, // ñ is not a diacritic to strip
	}
	for _, tt := range tests {
		if got := accentLenientMatch(tt.user, tt.correct); got != tt.want {
			t.Errorf("accentLenientMatch(%q, %q) = %v, want %v", tt.user, tt.correct, got, tt.want)
		}
	}
}

func TestNormalize_StripDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hablé", "hable"},
		{"habláramos", "hablaramos"},
		{"soñar", "soñar"},
		{"año", "año"},
		{"ü", "u"},             // decomposed ü
		{"ñ", "ñ"},             // decomposed ñ survives
		{"está", "esta"},
	}
	for _, tt := range tests {
		if got := stripDiacritics(tt.in); got != tt.want {
			t.Errorf("stripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRuleTable_RejectsPartialOverride(t *testing.T) {
	data := SeedTableData()
	data.Irregular["caber"] = map[Tense]Paradigm{
		TensePresent: {"quepa", "quepas", "quepa", "", "quepáis", "quepan"},
	}
	_, err := NewRuleTable(data)
	var incompleteErr *ErrIncompleteParadigm
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("got %v, want ErrIncompleteParadigm", err)
	}
	if incompleteErr.Infinitive != "caber" {
		t.Errorf("error names %q, want caber", incompleteErr.Infinitive)
	}
}

func TestParadigm_FullTable(t *testing.T) {
	e := testEngine(t)

	p, err := e.Paradigm("dormir", TensePresent)
	if err != nil {
		t.Fatalf("Paradigm: %v", err)
	}
	want := Paradigm{"duerma", "duermas", "duerma", "durmamos", "durmáis", "duerman"}
	if p != want {
		t.Errorf("Paradigm(dormir, present) = %v, want %v", p, want)
	}
}

func TestIndicativeForm_Lookup(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		infinitive string
		indTense   IndicativeTense
		person     Person
		want       string
	}{
		{"hablar", IndicativePresent, PersonYo, "hablo"},
		{"hablar", IndicativePreterite, PersonYo, "hablé"},
		{"pensar", IndicativePresent, PersonYo, "pienso"},
		{"pensar", IndicativePresent, PersonNosotros, "pensamos"},
		{"dormir", IndicativePreterite, PersonEl, "durmió"},
		{"dormir", IndicativePreterite, PersonNosotros, "dormimos"},
		{"tener", IndicativePresent, PersonYo, "tengo"},
		{"ser", IndicativePreterite, PersonEl, "fue"},
	}
	for _, tt := range tests {
		got, ok := e.IndicativeForm(tt.infinitive, tt.indTense, tt.person)
		if !ok {
			t.Fatalf("IndicativeForm(%s, %s, %s) unavailable", tt.infinitive, tt.indTense, tt.person)
		}
		if got != tt.want {
			t.Errorf("IndicativeForm(%s, %s, %s) = %q, want %q", tt.infinitive, tt.indTense, tt.person, got, tt.want)
		}
	}
}
