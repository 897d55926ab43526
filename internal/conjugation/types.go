package conjugation

// Tense represents a subjunctive tense.
type Tense string

const (
	TensePresent        Tense = "present_subjunctive"
	TenseImperfectRa    Tense = "imperfect_subjunctive_ra"
	TenseImperfectSe    Tense = "imperfect_subjunctive_se"
	TensePresentPerfect Tense = "present_perfect_subjunctive"
	TensePluperfect     Tense = "pluperfect_subjunctive"
)

// AllTenses returns all tenses in curriculum order.
func AllTenses() []Tense {
	return []Tense{
		TensePresent,
		TenseImperfectRa,
		TenseImperfectSe,
		TensePresentPerfect,
		TensePluperfect,
	}
}

// Valid reports whether t is a known tense.
func (t Tense) Valid() bool {
	switch t {
	case TensePresent, TenseImperfectRa, TenseImperfectSe, TensePresentPerfect, TensePluperfect:
		return true
	}
	return false
}

// Compound reports whether t is built from an auxiliary plus a participle.
func (t Tense) Compound() bool {
	return t == TensePresentPerfect || t == TensePluperfect
}

// DisplayName returns a human-readable name for a tense.
func (t Tense) DisplayName() string {
	switch t {
	case TensePresent:
		return "present subjunctive"
	case TenseImperfectRa:
		return "imperfect subjunctive (-ra)"
	case TenseImperfectSe:
		return "imperfect subjunctive (-se)"
	case TensePresentPerfect:
		return "present perfect subjunctive"
	case TensePluperfect:
		return "pluperfect subjunctive"
	default:
		return string(t)
	}
}

// Person represents a grammatical person.
type Person string

const (
	PersonYo       Person = "yo"
	PersonTu       Person = "tu"
	PersonEl       Person = "el_ella_ud"
	PersonNosotros Person = "nosotros"
	PersonVosotros Person = "vosotros"
	PersonEllos    Person = "ellos_uds"
)

// AllPersons returns all persons in paradigm order.
func AllPersons() []Person {
	return []Person{
		PersonYo,
		PersonTu,
		PersonEl,
		PersonNosotros,
		PersonVosotros,
		PersonEllos,
	}
}

// Valid reports whether p is a known person.
func (p Person) Valid() bool {
	return p.Index() >= 0
}

// Index returns the paradigm slot for a person, or -1 if unknown.
func (p Person) Index() int {
	switch p {
	case PersonYo:
		return 0
	case PersonTu:
		return 1
	case PersonEl:
		return 2
	case PersonNosotros:
		return 3
	case PersonVosotros:
		return 4
	case PersonEllos:
		return 5
	}
	return -1
}

// DisplayName returns a human-readable name for a person.
func (p Person) DisplayName() string {
	switch p {
	case PersonYo:
		return "yo"
	case PersonTu:
		return "tú"
	case PersonEl:
		return "él/ella/Ud."
	case PersonNosotros:
		return "nosotros"
	case PersonVosotros:
		return "vosotros"
	case PersonEllos:
		return "ellos/ellas/Uds."
	default:
		return string(p)
	}
}

// VerbClass is the conjugation class determined by the infinitive suffix.
type VerbClass string

const (
	ClassAr VerbClass = "ar"
	ClassEr VerbClass = "er"
	ClassIr VerbClass = "ir"
)

// StemChangeType tags a vowel alternation pattern.
type StemChangeType string

const (
	StemChangeNone StemChangeType = ""
	StemChangeEIe  StemChangeType = "e>ie"
	StemChangeOUe  StemChangeType = "o>ue"
	StemChangeEI   StemChangeType = "e>i"
)

// Paradigm holds the six surface forms of one tense, indexed by Person.Index.
type Paradigm [6]string

// Form returns the surface form for a person.
func (p Paradigm) Form(person Person) string {
	return p[person.Index()]
}

// Complete reports whether all six slots are filled.
func (p Paradigm) Complete() bool {
	for _, f := range p {
		if f == "" {
			return false
		}
	}
	return true
}

// VerbForm is a single conjugated form. Immutable once computed; derived
// data that is cheap to recompute, never persisted on its own.
type VerbForm struct {
	Infinitive string
	Tense      Tense
	Person     Person
	Surface    string
	Irregular  bool
	StemChange StemChangeType
}

// MatchType describes how a candidate answer compared to the correct form.
type MatchType string

const (
	MatchExact             MatchType = "exact"
	MatchAccentInsensitive MatchType = "accent_insensitive"
	MatchMismatch          MatchType = "mismatch"
)

// ValidationResult is the outcome of checking a candidate answer.
// Created per submission and consumed immediately; never persisted.
type ValidationResult struct {
	IsCorrect         bool
	NormalizedUser    string
	NormalizedCorrect string
	MatchType         MatchType
}
