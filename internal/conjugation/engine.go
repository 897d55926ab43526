package conjugation

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnknownVerbError reports a conjugation request for an infinitive the
// rule table cannot place: no irregular entry and no -ar/-er/-ir class.
// Fatal to the single request; the caller recovers by picking another verb.
type UnknownVerbError struct {
	Infinitive string
}

func (e *UnknownVerbError) Error() string {
	return fmt.Sprintf("unknown verb %q: no conjugation class or irregular entry", e.Infinitive)
}

// ValidateOptions configures answer comparison.
type ValidateOptions struct {
	// AccentSensitive requires diacritics to match exactly. Off by default:
	// a diacritic-only difference is reported as ACCENT_INSENSITIVE rather
	// than a mismatch, and still counts as correct.
	AccentSensitive bool
}

// Engine conjugates Spanish verbs in the subjunctive mood and validates
// candidate answers. All methods are pure functions over the immutable
// rule table; an Engine is safe for concurrent use.
type Engine struct {
	table *RuleTable
}

// NewEngine returns an engine backed by table.
func NewEngine(table *RuleTable) *Engine {
	return &Engine{table: table}
}

// Table returns the engine's rule table.
func (e *Engine) Table() *RuleTable {
	return e.table
}

// Conjugate produces the surface form for (infinitive, tense, person).
//
// Resolution order: irregular full-paradigm override, then compound
// assembly (auxiliary + participle), then stem change, then regular
// stem + ending. Irregular overrides take absolute precedence; they are
// exceptions to all rules.
func (e *Engine) Conjugate(infinitive string, tense Tense, person Person) (VerbForm, error) {
	infinitive = strings.ToLower(strings.TrimSpace(infinitive))
	if infinitive == "" {
		return VerbForm{}, &UnknownVerbError{Infinitive: infinitive}
	}
	if !tense.Valid() {
		return VerbForm{}, fmt.Errorf("invalid tense %q", tense)
	}
	if !person.Valid() {
		return VerbForm{}, fmt.Errorf("invalid person %q", person)
	}

	if paradigm, ok := e.table.IrregularParadigm(infinitive, tense); ok {
		return VerbForm{
			Infinitive: infinitive,
			Tense:      tense,
			Person:     person,
			Surface:    paradigm.Form(person),
			Irregular:  true,
		}, nil
	}

	if tense.Compound() {
		return e.conjugateCompound(infinitive, tense, person)
	}

	class := classOf(infinitive)
	if class == "" {
		return VerbForm{}, &UnknownVerbError{Infinitive: infinitive}
	}

	stem := stemOf(infinitive)
	scType := StemChangeNone
	if sc, ok := e.table.StemChangeFor(infinitive); ok {
		if changed, applied := applyStemChange(stem, sc, tense, person); applied {
			stem = changed
			scType = sc.Type
		}
	}

	ending := e.table.Ending(class, tense, person)
	surface := joinOrthographic(class, stem, ending)

	return VerbForm{
		Infinitive: infinitive,
		Tense:      tense,
		Person:     person,
		Surface:    surface,
		StemChange: scType,
	}, nil
}

// conjugateCompound assembles a perfect tense from the haber paradigm and
// the past participle.
func (e *Engine) conjugateCompound(infinitive string, tense Tense, person Person) (VerbForm, error) {
	auxTense := TensePresent
	if tense == TensePluperfect {
		auxTense = TenseImperfectRa
	}
	aux, ok := e.table.IrregularParadigm("haber", auxTense)
	if !ok {
		return VerbForm{}, fmt.Errorf("rule table has no auxiliary paradigm for %s", auxTense)
	}

	if classOf(infinitive) == "" {
		if _, irregularPP := e.table.Participle(infinitive); !irregularPP {
			return VerbForm{}, &UnknownVerbError{Infinitive: infinitive}
		}
	}
	participle, irregularPP := e.table.Participle(infinitive)

	return VerbForm{
		Infinitive: infinitive,
		Tense:      tense,
		Person:     person,
		Surface:    aux.Form(person) + " " + participle,
		Irregular:  irregularPP,
	}, nil
}

// ConjugateRegular applies the regular rules only, ignoring irregular
// overrides and stem changes. Used by the error analyzer to recognize a
// regularized rendering of an irregular or stem-changing verb.
func (e *Engine) ConjugateRegular(infinitive string, tense Tense, person Person) (string, error) {
	infinitive = strings.ToLower(strings.TrimSpace(infinitive))
	class := classOf(infinitive)
	if class == "" {
		return "", &UnknownVerbError{Infinitive: infinitive}
	}
	if tense.Compound() {
		auxTense := TensePresent
		if tense == TensePluperfect {
			auxTense = TenseImperfectRa
		}
		aux, ok := e.table.IrregularParadigm("haber", auxTense)
		if !ok {
			return "", fmt.Errorf("rule table has no auxiliary paradigm for %s", auxTense)
		}
		stem := stemOf(infinitive)
		suffix := "ido"
		if class == ClassAr {
			suffix = "ado"
		}
		return aux.Form(person) + " " + stem + suffix, nil
	}
	return joinOrthographic(class, stemOf(infinitive), e.table.Ending(class, tense, person)), nil
}

// Paradigm returns all six forms of (infinitive, tense).
func (e *Engine) Paradigm(infinitive string, tense Tense) (Paradigm, error) {
	var p Paradigm
	for i, person := range AllPersons() {
		form, err := e.Conjugate(infinitive, tense, person)
		if err != nil {
			return Paradigm{}, err
		}
		p[i] = form.Surface
	}
	return p, nil
}

// IndicativeForm returns the indicative conjugation for the mood lookup,
// or false if the table cannot produce it.
func (e *Engine) IndicativeForm(infinitive string, indTense IndicativeTense, person Person) (string, bool) {
	infinitive = strings.ToLower(strings.TrimSpace(infinitive))
	if tenses, ok := e.table.indOverride[infinitive]; ok {
		if p, ok := tenses[indTense]; ok {
			return p.Form(person), true
		}
	}

	class := classOf(infinitive)
	if class == "" {
		return "", false
	}

	stem := stemOf(infinitive)
	if sc, ok := e.table.StemChangeFor(infinitive); ok {
		if changed, applied := applyIndicativeStemChange(stem, sc, class, indTense, person); applied {
			stem = changed
		}
	}

	ending := e.table.indEndings[class][indTense].Form(person)
	return joinOrthographic(class, stem, ending), true
}

// applyStemChange applies a vowel alternation for the subjunctive tenses.
// Returns the changed stem and whether a change applied.
//
// Present subjunctive: BootTo in boot persons (everything except
// nosotros/vosotros), RaisedTo (if any) in nosotros/vosotros. Imperfect
// subjunctive: RaisedTo in all persons (the -ir preterite-stem pattern);
// verbs without RaisedTo keep the plain stem. Compound tenses never see a
// stem change (the participle is built from the plain stem).
func applyStemChange(stem string, sc StemChange, tense Tense, person Person) (string, bool) {
	boot := person != PersonNosotros && person != PersonVosotros

	switch tense {
	case TensePresent:
		if boot {
			return replaceLast(stem, sc.From, sc.BootTo), true
		}
		if sc.RaisedTo != "" {
			return replaceLast(stem, sc.From, sc.RaisedTo), true
		}
	case TenseImperfectRa, TenseImperfectSe:
		if sc.RaisedTo != "" {
			return replaceLast(stem, sc.From, sc.RaisedTo), true
		}
	}
	return stem, false
}

// applyIndicativeStemChange mirrors the indicative distribution: boot-only
// in the present, raised third persons in the preterite of -ir verbs.
func applyIndicativeStemChange(stem string, sc StemChange, class VerbClass, indTense IndicativeTense, person Person) (string, bool) {
	switch indTense {
	case IndicativePresent:
		if person != PersonNosotros && person != PersonVosotros {
			return replaceLast(stem, sc.From, sc.BootTo), true
		}
	case IndicativePreterite:
		if sc.RaisedTo != "" && class == ClassIr && (person == PersonEl || person == PersonEllos) {
			return replaceLast(stem, sc.From, sc.RaisedTo), true
		}
	}
	return stem, false
}

// replaceLast replaces the last occurrence of old in s. Stem changes hit
// the root vowel closest to the ending (encontrar → encuentre, not
// *incontre).
func replaceLast(s, old, new string) string {
	i := strings.LastIndex(s, old)
	if i < 0 {
		return s
	}
	return s[:i] + new + s[i+len(old):]
}

// joinOrthographic concatenates stem + ending, applying Spanish spelling
// adjustments so the stem's final consonant keeps its sound:
//
//	-ar before e:  c→qu, g→gu, z→c   (buscar → busque, jugar → jugué)
//	-er/-ir before a:  vowel+c→zc, c→z, g→j, gu→g  (conocer → conozca,
//	vencer → venza, coger → coja, seguir → siga)
func joinOrthographic(class VerbClass, stem, ending string) string {
	if stem == "" || ending == "" {
		return stem + ending
	}

	first := []rune(ending)[0]
	switch class {
	case ClassAr:
		if first == 'e' || first == 'é' {
			switch {
			case strings.HasSuffix(stem, "c"):
				stem = stem[:len(stem)-1] + "qu"
			case strings.HasSuffix(stem, "gu"):
				// güe keeps the u audible (averiguar → averigüe).
				stem = stem[:len(stem)-2] + "gü"
			case strings.HasSuffix(stem, "g"):
				stem = stem + "u"
			case strings.HasSuffix(stem, "z"):
				stem = stem[:len(stem)-1] + "c"
			}
		}
	case ClassEr, ClassIr:
		if first == 'a' || first == 'á' {
			switch {
			case hasVowelBefore(stem, "c"):
				stem = stem[:len(stem)-1] + "zc"
			case strings.HasSuffix(stem, "qu"):
				stem = stem[:len(stem)-2] + "c"
			case strings.HasSuffix(stem, "gu"):
				stem = stem[:len(stem)-2] + "g"
			case strings.HasSuffix(stem, "c"):
				stem = stem[:len(stem)-1] + "z"
			case strings.HasSuffix(stem, "g"):
				stem = stem[:len(stem)-1] + "j"
			}
		}
	}
	return stem + ending
}

// hasVowelBefore reports whether stem ends in suffix preceded by a vowel.
func hasVowelBefore(stem, suffix string) bool {
	if !strings.HasSuffix(stem, suffix) {
		return false
	}
	rest := []rune(strings.TrimSuffix(stem, suffix))
	if len(rest) == 0 {
		return false
	}
	return strings.ContainsRune("aeiouáéíóú", rest[len(rest)-1])
}

// Validate compares a candidate answer against the correct conjugation.
// Pure function; returns EXACT, ACCENT_INSENSITIVE, or MISMATCH.
func (e *Engine) Validate(infinitive string, tense Tense, person Person, userAnswer string, opts ValidateOptions) (ValidationResult, error) {
	form, err := e.Conjugate(infinitive, tense, person)
	if err != nil {
		return ValidationResult{}, err
	}
	return CompareAnswer(form.Surface, userAnswer, opts), nil
}

// CompareAnswer normalizes both strings and classifies the match. Split
// out from Validate so the analyzer can compare against alternative forms
// without re-deriving them.
func CompareAnswer(correct, userAnswer string, opts ValidateOptions) ValidationResult {
	normUser := normalizeAnswer(userAnswer)
	normCorrect := normalizeAnswer(correct)

	res := ValidationResult{
		NormalizedUser:    normUser,
		NormalizedCorrect: normCorrect,
		MatchType:         MatchMismatch,
	}

	if normUser == normCorrect {
		res.IsCorrect = true
		res.MatchType = MatchExact
		return res
	}

	if !opts.AccentSensitive && accentLenientMatch(normUser, normCorrect) {
		res.IsCorrect = true
		res.MatchType = MatchAccentInsensitive
		return res
	}

	return res
}

// accentLenientMatch reports whether user differs from correct only by
// OMITTED diacritics. The leniency is directional: "hableis" is accepted
// for "habléis", but "hablé" is not accepted for "hable": an added accent
// produces a different word (hablé is the preterite indicative), not a
// typing shortcut.
func accentLenientMatch(user, correct string) bool {
	u := []rune(norm.NFC.String(user))
	c := []rune(norm.NFC.String(correct))
	if len(u) != len(c) {
		return false
	}
	for i := range u {
		if u[i] == c[i] {
			continue
		}
		if string(u[i]) == stripDiacritics(string(c[i])) {
			continue
		}
		return false
	}
	return true
}
