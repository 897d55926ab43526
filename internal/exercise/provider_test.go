package exercise

import (
	"context"
	"strings"
	"testing"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

func newTestProvider(t *testing.T, seed int64) *Provider {
	t.Helper()
	table, err := conjugation.DefaultRuleTable()
	if err != nil {
		t.Fatalf("rule table: %v", err)
	}
	return NewProvider(table, seed)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func TestNextExerciseCandidate_KnownVerbs(t *testing.T) {
	p := newTestProvider(t, 1)
	table, _ := conjugation.DefaultRuleTable()
	engine := conjugation.NewEngine(table)

	for i := 0; i < 200; i++ {
		cand, err := p.NextExerciseCandidate(context.Background(), adaptive.TierHard, "")
		if err != nil {
			t.Fatalf("candidate %d: %v", i, err)
		}
		if _, err := engine.Conjugate(cand.Infinitive, cand.Tense, cand.Person); err != nil {
			t.Errorf("candidate %d: %s/%s/%s not conjugable: %v", i, cand.Infinitive, cand.Tense, cand.Person, err)
		}
		if !strings.Contains(cand.SentenceTemplate, "___") {
			t.Errorf("candidate %d: template %q has no blank", i, cand.SentenceTemplate)
		}
		if !strings.Contains(cand.SentenceTemplate, cand.Infinitive) {
			t.Errorf("candidate %d: template %q does not name the verb", i, cand.SentenceTemplate)
		}
	}
}

func TestNextExerciseCandidate_EasyTier(t *testing.T) {
	p := newTestProvider(t, 2)
	for i := 0; i < 100; i++ {
		cand, err := p.NextExerciseCandidate(context.Background(), adaptive.TierEasy, "")
		if err != nil {
			t.Fatalf("candidate: %v", err)
		}
		if cand.Tense != conjugation.TensePresent {
			t.Errorf("easy tier served tense %s", cand.Tense)
		}
		if !contains(regularVerbs, cand.Infinitive) {
			t.Errorf("easy tier served non-regular verb %q", cand.Infinitive)
		}
	}
}

func TestNextExerciseCandidate_MediumExcludesIrregulars(t *testing.T) {
	p := newTestProvider(t, 3)
	for i := 0; i < 100; i++ {
		cand, err := p.NextExerciseCandidate(context.Background(), adaptive.TierMedium, "")
		if err != nil {
			t.Fatalf("candidate: %v", err)
		}
		if contains(irregularVerbs, cand.Infinitive) {
			t.Errorf("medium tier served irregular verb %q", cand.Infinitive)
		}
		if cand.Tense == conjugation.TensePresentPerfect || cand.Tense == conjugation.TensePluperfect {
			t.Errorf("medium tier served compound tense %s", cand.Tense)
		}
	}
}

func TestNextExerciseCandidate_EmphasisSkewsSelection(t *testing.T) {
	const draws = 600

	count := func(emphasis analyzer.Category) int {
		p := newTestProvider(t, 42)
		n := 0
		for i := 0; i < draws; i++ {
			cand, err := p.NextExerciseCandidate(context.Background(), adaptive.TierHard, emphasis)
			if err != nil {
				t.Fatalf("candidate: %v", err)
			}
			if contains(irregularVerbs, cand.Infinitive) {
				n++
			}
		}
		return n
	}

	baseline := count("")
	skewed := count(analyzer.CategoryIrregularForm)
	if skewed <= baseline {
		t.Errorf("irregular draws with emphasis = %d, baseline = %d; want a higher share", skewed, baseline)
	}
}

func TestNextExerciseCandidate_Deterministic(t *testing.T) {
	a := newTestProvider(t, 7)
	b := newTestProvider(t, 7)
	for i := 0; i < 20; i++ {
		ca, err := a.NextExerciseCandidate(context.Background(), adaptive.TierMedium, "")
		if err != nil {
			t.Fatalf("candidate: %v", err)
		}
		cb, err := b.NextExerciseCandidate(context.Background(), adaptive.TierMedium, "")
		if err != nil {
			t.Fatalf("candidate: %v", err)
		}
		if ca != cb {
			t.Fatalf("draw %d diverged: %+v vs %+v", i, ca, cb)
		}
	}
}
