package analyzer

import "github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"

// Category classifies a wrong answer.
type Category string

const (
	CategoryPersonConfusion Category = "person_confusion"
	CategoryTenseConfusion  Category = "tense_confusion"
	CategoryMoodConfusion   Category = "mood_confusion"
	CategoryStemChange      Category = "stem_change_error"
	CategoryIrregularForm   Category = "irregular_form_error"
	CategoryAccent          Category = "accent_error"
	CategoryUnknown         Category = "unknown"
)

// Classification is the output of classifying a wrong answer.
// Confidence is 0 only for CategoryUnknown.
type Classification struct {
	Category   Category
	Confidence float64
	Hint       string
}

// Input holds the context for classification.
type Input struct {
	Correct    conjugation.VerbForm
	UserAnswer string
	Validation conjugation.ValidationResult
}
