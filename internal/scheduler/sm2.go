package scheduler

import (
	"math"
	"time"
)

// Update applies one SM-2 review to an item and returns the updated copy.
// Pure function: no I/O, the caller persists the result.
//
// quality is clamped to [0, 5]. Below 3 the item falls back to the start
// of the learning cycle (interval 1, repetitions 0) with the ease factor
// untouched; 3 and above grows the interval on the 1 / 6 / interval×ease
// ladder and nudges the ease factor by the standard SM-2 delta, floored
// at MinEaseFactor.
func Update(item ReviewItem, quality int, now time.Time) ReviewItem {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	if quality < 3 {
		item.RepetitionCount = 0
		item.IntervalDays = 1
	} else {
		switch item.RepetitionCount {
		case 0:
			item.IntervalDays = 1
		case 1:
			item.IntervalDays = 6
		default:
			item.IntervalDays = int(math.Round(float64(item.IntervalDays) * item.EaseFactor))
		}
		item.RepetitionCount++

		q := float64(quality)
		item.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
		if item.EaseFactor < MinEaseFactor {
			item.EaseFactor = MinEaseFactor
		}
	}

	if item.IntervalDays < 1 {
		item.IntervalDays = 1
	}
	item.DueDate = now.AddDate(0, 0, item.IntervalDays)
	item.LastQuality = quality
	return item
}
