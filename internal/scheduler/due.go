package scheduler

import (
	"sort"
	"time"
)

// DueItems filters items due at asOf and orders them for review: earliest
// due first, with ties broken by ascending ease factor so the hardest
// material surfaces first among equally-due items.
func DueItems(items []ReviewItem, asOf time.Time) []ReviewItem {
	var due []ReviewItem
	for _, it := range items {
		if it.Due(asOf) {
			due = append(due, it)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].DueDate.Equal(due[j].DueDate) {
			return due[i].DueDate.Before(due[j].DueDate)
		}
		return due[i].EaseFactor < due[j].EaseFactor
	})
	return due
}
