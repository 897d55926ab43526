// Package exercise is the builtin content provider: template-driven cloze
// sentences over a curated verb inventory, selected by difficulty tier and
// error-category emphasis.
package exercise

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/session"
)

// emphasisWeight is how many extra draws an emphasized entry gets in the
// selection pool.
const emphasisWeight = 2

// verbKind groups the inventory by morphological behavior.
type verbKind int

const (
	kindRegular verbKind = iota
	kindStemChange
	kindIrregular
)

type poolEntry struct {
	infinitive string
	kind       verbKind
}

// Provider implements session.ContentProvider from static sentence
// templates. Deterministic under a fixed seed.
type Provider struct {
	table *conjugation.RuleTable
	rng   *rand.Rand
	last  string // previous infinitive, not repeated back to back
}

// NewProvider builds a provider over the given rule table. Verbs the
// table does not know are dropped from the inventory.
func NewProvider(table *conjugation.RuleTable, seed int64) *Provider {
	return &Provider{table: table, rng: rand.New(rand.NewSource(seed))}
}

// NextExerciseCandidate picks a verb, tense, and person for the tier and
// wraps them in a trigger-phrase cloze sentence.
func (p *Provider) NextExerciseCandidate(_ context.Context, tier adaptive.Tier, emphasis analyzer.Category) (session.ExerciseCandidate, error) {
	pool := p.pool(tier, emphasis)
	if len(pool) == 0 {
		return session.ExerciseCandidate{}, fmt.Errorf("exercise: empty inventory for tier %s", tier)
	}

	entry := pool[p.rng.Intn(len(pool))]
	if entry.infinitive == p.last && len(pool) > 1 {
		entry = pool[p.rng.Intn(len(pool))]
	}
	p.last = entry.infinitive

	tenses := p.tenses(tier, emphasis)
	tense := tenses[p.rng.Intn(len(tenses))]
	person := p.person(emphasis)

	return session.ExerciseCandidate{
		Infinitive:       entry.infinitive,
		Tense:            tense,
		Person:           person,
		SentenceTemplate: p.sentence(entry.infinitive, tense, person),
	}, nil
}

// pool assembles the tier's verb inventory, duplicating entries whose
// kind matches the category emphasis so they are drawn emphasisWeight
// times as often.
func (p *Provider) pool(tier adaptive.Tier, emphasis analyzer.Category) []poolEntry {
	var entries []poolEntry
	add := func(kind verbKind, verbs []string) {
		for _, v := range verbs {
			entries = append(entries, poolEntry{infinitive: v, kind: kind})
		}
	}

	switch tier {
	case adaptive.TierEasy:
		add(kindRegular, regularVerbs)
	case adaptive.TierHard:
		add(kindRegular, regularVerbs)
		add(kindStemChange, stemChangeVerbs)
		add(kindIrregular, irregularVerbs)
	default: // MEDIUM
		add(kindRegular, regularVerbs)
		add(kindStemChange, stemChangeVerbs)
	}

	entries = lo.Filter(entries, func(e poolEntry, _ int) bool {
		return p.table.Knows(e.infinitive)
	})

	emphasized := emphasisKind(emphasis)
	if emphasized == nil {
		return entries
	}
	weighted := make([]poolEntry, 0, len(entries)*emphasisWeight)
	for _, e := range entries {
		weighted = append(weighted, e)
		if e.kind == *emphasized {
			for i := 1; i < emphasisWeight; i++ {
				weighted = append(weighted, e)
			}
		}
	}
	return weighted
}

// emphasisKind maps an error category onto the verb kind whose exercises
// drill it; nil when the category is not verb-selective.
func emphasisKind(c analyzer.Category) *verbKind {
	var k verbKind
	switch c {
	case analyzer.CategoryStemChange:
		k = kindStemChange
	case analyzer.CategoryIrregularForm:
		k = kindIrregular
	default:
		return nil
	}
	return &k
}

func (p *Provider) tenses(tier adaptive.Tier, emphasis analyzer.Category) []conjugation.Tense {
	var tenses []conjugation.Tense
	switch tier {
	case adaptive.TierEasy:
		tenses = []conjugation.Tense{conjugation.TensePresent}
	case adaptive.TierHard:
		tenses = []conjugation.Tense{
			conjugation.TensePresent,
			conjugation.TenseImperfectRa,
			conjugation.TenseImperfectSe,
			conjugation.TensePresentPerfect,
			conjugation.TensePluperfect,
		}
	default:
		tenses = []conjugation.Tense{
			conjugation.TensePresent,
			conjugation.TenseImperfectRa,
			conjugation.TenseImperfectSe,
		}
	}
	// Tense confusion drills past subjunctive against the present, so
	// widen the mix when the tier allows it.
	if emphasis == analyzer.CategoryTenseConfusion && len(tenses) > 1 {
		weighted := make([]conjugation.Tense, 0, len(tenses)*emphasisWeight)
		for _, t := range tenses {
			weighted = append(weighted, t)
			if t != conjugation.TensePresent {
				weighted = append(weighted, t)
			}
		}
		return weighted
	}
	return tenses
}

func (p *Provider) person(emphasis analyzer.Category) conjugation.Person {
	persons := conjugation.AllPersons()
	// Accent slips cluster on vosotros forms; oversample them.
	if emphasis == analyzer.CategoryAccent {
		persons = append(persons, conjugation.PersonVosotros)
	}
	return persons[p.rng.Intn(len(persons))]
}

func (p *Provider) sentence(infinitive string, tense conjugation.Tense, person conjugation.Person) string {
	phrases := triggers[tense]
	trigger := phrases[p.rng.Intn(len(phrases))]
	return fmt.Sprintf("%s %s ___ (%s).", trigger, person.DisplayName(), infinitive)
}
