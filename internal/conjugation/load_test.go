package conjugation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules_FullFile(t *testing.T) {
	raw := []byte(`{
		"irregular": {
			"caber": {
				"present_subjunctive": ["quepa", "quepas", "quepa", "quepamos", "quepáis", "quepan"]
			}
		},
		"stem_changes": {
			"sonar": {"type": "o>ue"},
			"herir": {"type": "e>ie", "raised": "i"}
		},
		"participles": {
			"freír": "frito"
		}
	}`)

	data, err := ParseRules(raw)
	require.NoError(t, err)

	require.Contains(t, data.Irregular, "caber")
	assert.Equal(t,
		Paradigm{"quepa", "quepas", "quepa", "quepamos", "quepáis", "quepan"},
		data.Irregular["caber"][TensePresent])

	assert.Equal(t,
		StemChange{Type: StemChangeOUe, From: "o", BootTo: "ue"},
		data.StemChanges["sonar"])
	assert.Equal(t,
		StemChange{Type: StemChangeEIe, From: "e", BootTo: "ie", RaisedTo: "i"},
		data.StemChanges["herir"])

	assert.Equal(t, "frito", data.Participles["freír"])
}

func TestParseRules_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"short paradigm", `{"irregular": {"caber": {"present_subjunctive": ["quepa"]}}}`},
		{"empty form", `{"irregular": {"caber": {"present_subjunctive": ["", "quepas", "quepa", "quepamos", "quepáis", "quepan"]}}}`},
		{"unknown stem change type", `{"stem_changes": {"sonar": {"type": "u>ue"}}}`},
		{"unknown top-level key", `{"verbs": {}}`},
		{"unknown tense", `{"irregular": {"caber": {"future_subjunctive": ["a", "b", "c", "d", "e", "f"]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MergeConjugates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"stem_changes": {"colgar": {"type": "o>ue"}}
	}`), 0o644))

	extra, err := LoadFile(path)
	require.NoError(t, err)

	table, err := NewRuleTable(Merge(SeedTableData(), extra))
	require.NoError(t, err)
	engine := NewEngine(table)

	form, err := engine.Conjugate("colgar", TensePresent, PersonYo)
	require.NoError(t, err)
	// o>ue boot plus the g>gu spelling adjustment before e.
	assert.Equal(t, "cuelgue", form.Surface)

	// Seed data survives the merge.
	form, err = engine.Conjugate("tener", TensePresent, PersonYo)
	require.NoError(t, err)
	assert.Equal(t, "tenga", form.Surface)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
