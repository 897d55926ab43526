package scheduler

import "github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"

// FastAnswerMs is the latency bound separating a confident recall from a
// slow one.
const FastAnswerMs = 15000

// AnswerSignals carries everything quality derivation needs about one
// submission.
type AnswerSignals struct {
	Correct    bool
	MatchType  conjugation.MatchType
	Classified bool // a non-UNKNOWN error category was found
	UsedHint   bool
	Retry      bool // correct only after a previous wrong attempt
	LatencyMs  int
}

// DeriveQuality maps answer signals onto the 0-5 SM-2 quality scale:
//
//	5  correct, fast, unaided
//	4  correct but slow or hinted
//	3  correct after a retry
//	2  incorrect on diacritics alone
//	1  incorrect but a well-formed confusion (classified)
//	0  incorrect, unrecognizable
//
// An accent-insensitive match counts as incorrect here: the validator
// accepts it, but scheduling treats it as material that needs another
// pass.
func DeriveQuality(sig AnswerSignals) int {
	if sig.Correct && sig.MatchType == conjugation.MatchExact {
		switch {
		case sig.Retry:
			return 3
		case sig.UsedHint || sig.LatencyMs >= FastAnswerMs:
			return 4
		default:
			return 5
		}
	}
	if sig.MatchType == conjugation.MatchAccentInsensitive {
		return 2
	}
	if sig.Classified {
		return 1
	}
	return 0
}
