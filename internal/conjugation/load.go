package conjugation

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ruleFileSchema constrains user-supplied rule-table extensions. Paradigms
// are exactly six non-empty strings in person order; stem-change types are
// the known alternations.
var ruleFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"irregular": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string", "minLength": 1},
					"minItems": 6,
					"maxItems": 6,
				},
			},
		},
		"stem_changes": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type": "string",
						"enum": []any{"e>ie", "o>ue", "e>i"},
					},
					"raised": map[string]any{
						"type": "string",
						"enum": []any{"i", "u"},
					},
				},
				"required":             []any{"type"},
				"additionalProperties": false,
			},
		},
		"participles": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string", "minLength": 1},
		},
	},
	"additionalProperties": false,
}

var (
	compiledRuleSchema     *jsonschema.Schema
	compileRuleSchemaOnce  sync.Once
	compileRuleSchemaError error
)

func ruleSchema() (*jsonschema.Schema, error) {
	compileRuleSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(ruleFileSchema)
		if err != nil {
			compileRuleSchemaError = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileRuleSchemaError = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://conjugation-rules.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileRuleSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledRuleSchema, compileRuleSchemaError = c.Compile(schemaURL)
	})
	return compiledRuleSchema, compileRuleSchemaError
}

// ruleFile is the JSON shape of a rule-table extension.
type ruleFile struct {
	Irregular   map[string]map[string][]string `json:"irregular"`
	StemChanges map[string]ruleFileStemChange  `json:"stem_changes"`
	Participles map[string]string              `json:"participles"`
}

type ruleFileStemChange struct {
	Type   string `json:"type"`
	Raised string `json:"raised"`
}

// LoadFile reads a JSON rule-table extension, validates it against the
// schema, and returns TableData suitable for merging over the seed.
func LoadFile(path string) (TableData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TableData{}, fmt.Errorf("read rule file: %w", err)
	}
	return ParseRules(raw)
}

// ParseRules parses and schema-validates raw rule-table JSON.
func ParseRules(raw []byte) (TableData, error) {
	schema, err := ruleSchema()
	if err != nil {
		return TableData{}, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return TableData{}, fmt.Errorf("invalid rule JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return TableData{}, fmt.Errorf("rule file failed schema validation: %w", err)
	}

	var rf ruleFile
	if err := json.Unmarshal(raw, &rf); err != nil {
		return TableData{}, fmt.Errorf("decode rule file: %w", err)
	}

	data := TableData{
		Irregular:   map[string]map[Tense]Paradigm{},
		StemChanges: map[string]StemChange{},
		Participles: rf.Participles,
	}

	for inf, tenses := range rf.Irregular {
		data.Irregular[inf] = map[Tense]Paradigm{}
		for tenseName, forms := range tenses {
			tense := Tense(tenseName)
			if !tense.Valid() {
				return TableData{}, fmt.Errorf("irregular override for %q: unknown tense %q", inf, tenseName)
			}
			var p Paradigm
			copy(p[:], forms)
			data.Irregular[inf][tense] = p
		}
	}

	for inf, sc := range rf.StemChanges {
		change, err := stemChangeFromTag(sc.Type, sc.Raised)
		if err != nil {
			return TableData{}, fmt.Errorf("stem change for %q: %w", inf, err)
		}
		data.StemChanges[inf] = change
	}

	return data, nil
}

func stemChangeFromTag(tag, raised string) (StemChange, error) {
	var sc StemChange
	switch StemChangeType(tag) {
	case StemChangeEIe:
		sc = StemChange{Type: StemChangeEIe, From: "e", BootTo: "ie"}
	case StemChangeOUe:
		sc = StemChange{Type: StemChangeOUe, From: "o", BootTo: "ue"}
	case StemChangeEI:
		sc = StemChange{Type: StemChangeEI, From: "e", BootTo: "i"}
	default:
		return StemChange{}, fmt.Errorf("unknown type %q", tag)
	}
	sc.RaisedTo = raised
	return sc, nil
}
