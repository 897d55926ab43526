package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/bjpl/subjunctive-practice-sub006/ent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/answerevent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
	"github.com/bjpl/subjunctive-practice-sub006/ent/sessionevent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// UserStats aggregates a user's practice history from the event log.
type UserStats struct {
	Sessions   int
	Answered   int
	Correct    int
	ByCategory map[string]int // error category -> count, over all answers
	ByTense    map[string]int // tense -> answers
}

// Accuracy is the all-time fraction of correct answers.
func (s UserStats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// UserStats replays the user's answer events into aggregate counts.
func (s *Store) UserStats(ctx context.Context, userID string) (UserStats, error) {
	answers, err := s.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return UserStats{}, fmt.Errorf("query answer events: %w", err)
	}

	sessions, err := s.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.Kind("completed"),
		).
		Count(ctx)
	if err != nil {
		return UserStats{}, fmt.Errorf("count sessions: %w", err)
	}

	stats := UserStats{
		Sessions: sessions,
		Answered: len(answers),
		Correct: lo.CountBy(answers, func(a *ent.AnswerEvent) bool {
			return a.Correct
		}),
		ByTense: lo.CountValuesBy(answers, func(a *ent.AnswerEvent) string {
			return a.Tense
		}),
	}

	wrong := lo.Filter(answers, func(a *ent.AnswerEvent, _ int) bool {
		return a.Category != ""
	})
	stats.ByCategory = lo.CountValuesBy(wrong, func(a *ent.AnswerEvent) string {
		return a.Category
	})
	return stats, nil
}

// ResetUser wipes the user's review schedule and performance window. The
// event log is append-only history and stays.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.ReviewItem.Delete().
		Where(reviewitem.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete review items: %w", err)
	}
	if _, err := s.client.WindowSnapshot.Delete().
		Where(windowsnapshot.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete window snapshot: %w", err)
	}
	return nil
}
