package conjugation

import (
	"fmt"
	"strings"
)

// IndicativeTense identifies an indicative paradigm kept for the mood
// lookup. Indicative forms are never produced as answers; they exist so
// the error analyzer can recognize a well-formed indicative answer.
type IndicativeTense string

const (
	IndicativePresent   IndicativeTense = "present_indicative"
	IndicativePreterite IndicativeTense = "preterite_indicative"
)

// StemChange describes how a verb's root vowel alternates.
//
// BootTo replaces the last occurrence of the source vowel in "boot"
// persons (all except nosotros/vosotros). RaisedTo, when non-empty,
// replaces the same vowel in nosotros/vosotros of the present subjunctive
// and in every person of the imperfect subjunctive (the -ir pattern:
// dormir → durmamos, durmiera).
type StemChange struct {
	Type     StemChangeType
	From     string
	BootTo   string
	RaisedTo string
}

// RuleTable holds all conjugation data: regular endings, irregular
// paradigm overrides, stem-change tags, participles, and the indicative
// lookup. Built once at startup and read-only thereafter.
type RuleTable struct {
	endings     map[VerbClass]map[Tense]Paradigm
	irregular   map[string]map[Tense]Paradigm
	stemChanges map[string]StemChange
	participles map[string]string

	indEndings  map[VerbClass]map[IndicativeTense]Paradigm
	indOverride map[string]map[IndicativeTense]Paradigm
}

// TableData is the mutable form a RuleTable is assembled from. Seed data
// and JSON extensions both produce TableData; NewRuleTable validates and
// freezes it.
type TableData struct {
	Irregular   map[string]map[Tense]Paradigm
	StemChanges map[string]StemChange
	Participles map[string]string
	IndOverride map[string]map[IndicativeTense]Paradigm
}

// ErrIncompleteParadigm reports an irregular override that does not cover
// all six persons of a tense it claims. Partial overrides are a
// data-integrity error, not a fallback case.
type ErrIncompleteParadigm struct {
	Infinitive string
	Tense      Tense
}

func (e *ErrIncompleteParadigm) Error() string {
	return fmt.Sprintf("irregular override for %q is missing persons in %s", e.Infinitive, e.Tense)
}

// NewRuleTable validates data and returns an immutable rule table.
func NewRuleTable(data TableData) (*RuleTable, error) {
	for inf, tenses := range data.Irregular {
		for tense, paradigm := range tenses {
			if !tense.Valid() {
				return nil, fmt.Errorf("irregular override for %q: unknown tense %q", inf, tense)
			}
			if !paradigm.Complete() {
				return nil, &ErrIncompleteParadigm{Infinitive: inf, Tense: tense}
			}
		}
	}
	for inf, tenses := range data.IndOverride {
		for tense, paradigm := range tenses {
			if !paradigm.Complete() {
				return nil, fmt.Errorf("indicative override for %q is missing persons in %s", inf, tense)
			}
		}
	}
	for inf, sc := range data.StemChanges {
		if sc.From == "" || sc.BootTo == "" {
			return nil, fmt.Errorf("stem change for %q has no vowel alternation", inf)
		}
		if !strings.Contains(stemOf(inf), sc.From) {
			return nil, fmt.Errorf("stem change for %q: stem has no %q", inf, sc.From)
		}
	}

	return &RuleTable{
		endings:     regularEndings(),
		irregular:   data.Irregular,
		stemChanges: data.StemChanges,
		participles: data.Participles,
		indEndings:  indicativeEndings(),
		indOverride: data.IndOverride,
	}, nil
}

// Merge overlays ext onto base, with ext entries winning on conflict.
// Used to apply a JSON rule-table extension over the builtin seed.
func Merge(base, ext TableData) TableData {
	out := TableData{
		Irregular:   map[string]map[Tense]Paradigm{},
		StemChanges: map[string]StemChange{},
		Participles: map[string]string{},
		IndOverride: map[string]map[IndicativeTense]Paradigm{},
	}
	for _, d := range []TableData{base, ext} {
		for inf, tenses := range d.Irregular {
			if out.Irregular[inf] == nil {
				out.Irregular[inf] = map[Tense]Paradigm{}
			}
			for t, p := range tenses {
				out.Irregular[inf][t] = p
			}
		}
		for inf, sc := range d.StemChanges {
			out.StemChanges[inf] = sc
		}
		for inf, pp := range d.Participles {
			out.Participles[inf] = pp
		}
		for inf, tenses := range d.IndOverride {
			if out.IndOverride[inf] == nil {
				out.IndOverride[inf] = map[IndicativeTense]Paradigm{}
			}
			for t, p := range tenses {
				out.IndOverride[inf][t] = p
			}
		}
	}
	return out
}

// classOf returns the conjugation class for an infinitive, or "" if the
// suffix is not -ar/-er/-ir.
func classOf(infinitive string) VerbClass {
	switch {
	case strings.HasSuffix(infinitive, "ar"):
		return ClassAr
	case strings.HasSuffix(infinitive, "er"):
		return ClassEr
	case strings.HasSuffix(infinitive, "ir"), strings.HasSuffix(infinitive, "ír"):
		return ClassIr
	}
	return ""
}

// stemOf strips the infinitive suffix.
func stemOf(infinitive string) string {
	if len(infinitive) < 2 {
		return infinitive
	}
	trimmed := strings.TrimSuffix(infinitive, "ír")
	if trimmed != infinitive {
		return trimmed
	}
	return infinitive[:len(infinitive)-2]
}

// IrregularParadigm returns the full override for (infinitive, tense), if any.
func (rt *RuleTable) IrregularParadigm(infinitive string, tense Tense) (Paradigm, bool) {
	tenses, ok := rt.irregular[infinitive]
	if !ok {
		return Paradigm{}, false
	}
	p, ok := tenses[tense]
	return p, ok
}

// StemChangeFor returns the stem-change pattern for an infinitive, if any.
func (rt *RuleTable) StemChangeFor(infinitive string) (StemChange, bool) {
	sc, ok := rt.stemChanges[infinitive]
	return sc, ok
}

// Participle returns the past participle for an infinitive, and whether it
// is an irregular (listed) form.
func (rt *RuleTable) Participle(infinitive string) (string, bool) {
	if pp, ok := rt.participles[infinitive]; ok {
		return pp, true
	}
	stem := stemOf(infinitive)
	if classOf(infinitive) == ClassAr {
		return stem + "ado", false
	}
	return stem + "ido", false
}

// Ending returns the regular ending for (class, tense, person).
func (rt *RuleTable) Ending(class VerbClass, tense Tense, person Person) string {
	return rt.endings[class][tense].Form(person)
}

// Knows reports whether the table can conjugate an infinitive: either it
// has an irregular entry or its suffix places it in a known class.
func (rt *RuleTable) Knows(infinitive string) bool {
	if _, ok := rt.irregular[infinitive]; ok {
		return true
	}
	return classOf(infinitive) != ""
}

// regularEndings returns the regular subjunctive ending paradigms for the
// three simple tenses. Compound tenses have no endings of their own; they
// are assembled from the auxiliary paradigm plus a participle.
func regularEndings() map[VerbClass]map[Tense]Paradigm {
	erIr := map[Tense]Paradigm{
		TensePresent:     {"a", "as", "a", "amos", "áis", "an"},
		TenseImperfectRa: {"iera", "ieras", "iera", "iéramos", "ierais", "ieran"},
		TenseImperfectSe: {"iese", "ieses", "iese", "iésemos", "ieseis", "iesen"},
	}
	return map[VerbClass]map[Tense]Paradigm{
		ClassAr: {
			TensePresent:     {"e", "es", "e", "emos", "éis", "en"},
			TenseImperfectRa: {"ara", "aras", "ara", "áramos", "arais", "aran"},
			TenseImperfectSe: {"ase", "ases", "ase", "ásemos", "aseis", "asen"},
		},
		ClassEr: erIr,
		ClassIr: erIr,
	}
}

// indicativeEndings returns regular indicative paradigms for the mood lookup.
func indicativeEndings() map[VerbClass]map[IndicativeTense]Paradigm {
	return map[VerbClass]map[IndicativeTense]Paradigm{
		ClassAr: {
			IndicativePresent:   {"o", "as", "a", "amos", "áis", "an"},
			IndicativePreterite: {"é", "aste", "ó", "amos", "asteis", "aron"},
		},
		ClassEr: {
			IndicativePresent:   {"o", "es", "e", "emos", "éis", "en"},
			IndicativePreterite: {"í", "iste", "ió", "imos", "isteis", "ieron"},
		},
		ClassIr: {
			IndicativePresent:   {"o", "es", "e", "imos", "ís", "en"},
			IndicativePreterite: {"í", "iste", "ió", "imos", "isteis", "ieron"},
		},
	}
}
