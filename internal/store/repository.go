package store

import (
	"context"
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/ent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
	"github.com/bjpl/subjunctive-practice-sub006/ent/schema"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
	"github.com/bjpl/subjunctive-practice-sub006/internal/session"
)

// repository implements session.Repository using the ent client. All
// failures surface as *session.RepositoryError so the orchestrator can
// pass them through untouched.
type repository struct {
	client *ent.Client
}

func repoErr(op string, err error) error {
	return &session.RepositoryError{Op: op, Err: err}
}

func (r *repository) LoadReviewItems(ctx context.Context, userID string) ([]scheduler.ReviewItem, error) {
	rows, err := r.client.ReviewItem.Query().
		Where(reviewitem.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, repoErr("load review items", err)
	}
	items := make([]scheduler.ReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, scheduler.ReviewItem{
			Key: scheduler.ItemKey{
				UserID:     row.UserID,
				Infinitive: row.Infinitive,
				Tense:      conjugation.Tense(row.Tense),
				Person:     conjugation.Person(row.Person),
			},
			EaseFactor:      row.EaseFactor,
			IntervalDays:    row.IntervalDays,
			RepetitionCount: row.RepetitionCount,
			DueDate:         row.DueDate,
			LastQuality:     row.LastQuality,
		})
	}
	return items, nil
}

func (r *repository) SaveReviewItem(ctx context.Context, item scheduler.ReviewItem) error {
	existing, err := r.client.ReviewItem.Query().
		Where(
			reviewitem.UserID(item.Key.UserID),
			reviewitem.Infinitive(item.Key.Infinitive),
			reviewitem.Tense(string(item.Key.Tense)),
			reviewitem.Person(string(item.Key.Person)),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetEaseFactor(item.EaseFactor).
			SetIntervalDays(item.IntervalDays).
			SetRepetitionCount(item.RepetitionCount).
			SetDueDate(item.DueDate).
			SetLastQuality(item.LastQuality).
			Save(ctx)
		if err != nil {
			return repoErr("update review item", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.ReviewItem.Create().
			SetUserID(item.Key.UserID).
			SetInfinitive(item.Key.Infinitive).
			SetTense(string(item.Key.Tense)).
			SetPerson(string(item.Key.Person)).
			SetEaseFactor(item.EaseFactor).
			SetIntervalDays(item.IntervalDays).
			SetRepetitionCount(item.RepetitionCount).
			SetDueDate(item.DueDate).
			SetLastQuality(item.LastQuality).
			Save(ctx)
		if err != nil {
			return repoErr("create review item", err)
		}
		return nil
	default:
		return repoErr("query review item", err)
	}
}

func (r *repository) LoadPerformanceWindow(ctx context.Context, userID string) (adaptive.Window, error) {
	snap, err := r.client.WindowSnapshot.Query().
		Where(windowsnapshot.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return adaptive.NewWindow(adaptive.DefaultWindowSize), nil
		}
		return adaptive.Window{}, repoErr("load performance window", err)
	}

	outcomes := make([]adaptive.Outcome, 0, len(snap.Outcomes))
	for _, rec := range snap.Outcomes {
		outcomes = append(outcomes, adaptive.Outcome{
			Correct:  rec.Correct,
			Category: analyzer.Category(rec.Category),
			At:       rec.At,
		})
	}
	return adaptive.Restore(snap.Size, outcomes), nil
}

func (r *repository) SavePerformanceWindow(ctx context.Context, userID string, w adaptive.Window) error {
	outcomes := w.Outcomes()
	records := make([]schema.OutcomeRecord, 0, len(outcomes))
	for _, o := range outcomes {
		records = append(records, schema.OutcomeRecord{
			Correct:  o.Correct,
			Category: string(o.Category),
			At:       o.At,
		})
	}

	n, err := r.client.WindowSnapshot.Update().
		Where(windowsnapshot.UserID(userID)).
		SetSize(w.Size()).
		SetOutcomes(records).
		Save(ctx)
	if err != nil {
		return repoErr("update performance window", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.WindowSnapshot.Create().
		SetUserID(userID).
		SetSize(w.Size()).
		SetOutcomes(records).
		Save(ctx)
	if err != nil {
		return repoErr(fmt.Sprintf("create performance window for %s", userID), err)
	}
	return nil
}
