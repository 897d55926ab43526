package store

import (
	"context"
	"fmt"

	"github.com/bjpl/subjunctive-practice-sub006/ent"
	"github.com/bjpl/subjunctive-practice-sub006/internal/session"
)

// eventRepo implements session.EventRepo backed by ent and the global
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data session.AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetInfinitive(data.Infinitive).
		SetTense(string(data.Tense)).
		SetPerson(string(data.Person)).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetMatchType(string(data.MatchType)).
		SetCategory(string(data.Category)).
		SetQuality(data.Quality).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data session.SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetKind(data.Kind).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		SetDurationMs(data.Duration.Milliseconds()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
