// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/ent/answerevent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/reviewitem"
	"github.com/bjpl/subjunctive-practice-sub006/ent/schema"
	"github.com/bjpl/subjunctive-practice-sub006/ent/sessionevent"
	"github.com/bjpl/subjunctive-practice-sub006/ent/windowsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescInfinitive is the schema descriptor for infinitive field.
	answereventDescInfinitive := answereventFields[2].Descriptor()
	// answerevent.InfinitiveValidator is a validator for the "infinitive" field. It is called by the builders before save.
	answerevent.InfinitiveValidator = answereventDescInfinitive.Validators[0].(func(string) error)
	// answereventDescTense is the schema descriptor for tense field.
	answereventDescTense := answereventFields[3].Descriptor()
	// answerevent.TenseValidator is a validator for the "tense" field. It is called by the builders before save.
	answerevent.TenseValidator = answereventDescTense.Validators[0].(func(string) error)
	// answereventDescPerson is the schema descriptor for person field.
	answereventDescPerson := answereventFields[4].Descriptor()
	// answerevent.PersonValidator is a validator for the "person" field. It is called by the builders before save.
	answerevent.PersonValidator = answereventDescPerson.Validators[0].(func(string) error)
	// answereventDescMatchType is the schema descriptor for match_type field.
	answereventDescMatchType := answereventFields[7].Descriptor()
	// answerevent.MatchTypeValidator is a validator for the "match_type" field. It is called by the builders before save.
	answerevent.MatchTypeValidator = answereventDescMatchType.Validators[0].(func(string) error)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescUserID is the schema descriptor for user_id field.
	reviewitemDescUserID := reviewitemFields[0].Descriptor()
	// reviewitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewitem.UserIDValidator = reviewitemDescUserID.Validators[0].(func(string) error)
	// reviewitemDescInfinitive is the schema descriptor for infinitive field.
	reviewitemDescInfinitive := reviewitemFields[1].Descriptor()
	// reviewitem.InfinitiveValidator is a validator for the "infinitive" field. It is called by the builders before save.
	reviewitem.InfinitiveValidator = reviewitemDescInfinitive.Validators[0].(func(string) error)
	// reviewitemDescTense is the schema descriptor for tense field.
	reviewitemDescTense := reviewitemFields[2].Descriptor()
	// reviewitem.TenseValidator is a validator for the "tense" field. It is called by the builders before save.
	reviewitem.TenseValidator = reviewitemDescTense.Validators[0].(func(string) error)
	// reviewitemDescPerson is the schema descriptor for person field.
	reviewitemDescPerson := reviewitemFields[3].Descriptor()
	// reviewitem.PersonValidator is a validator for the "person" field. It is called by the builders before save.
	reviewitem.PersonValidator = reviewitemDescPerson.Validators[0].(func(string) error)
	// reviewitemDescEaseFactor is the schema descriptor for ease_factor field.
	reviewitemDescEaseFactor := reviewitemFields[4].Descriptor()
	// reviewitem.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewitem.DefaultEaseFactor = reviewitemDescEaseFactor.Default.(float64)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int)
	// reviewitemDescRepetitionCount is the schema descriptor for repetition_count field.
	reviewitemDescRepetitionCount := reviewitemFields[6].Descriptor()
	// reviewitem.DefaultRepetitionCount holds the default value on creation for the repetition_count field.
	reviewitem.DefaultRepetitionCount = reviewitemDescRepetitionCount.Default.(int)
	// reviewitemDescLastQuality is the schema descriptor for last_quality field.
	reviewitemDescLastQuality := reviewitemFields[8].Descriptor()
	// reviewitem.DefaultLastQuality holds the default value on creation for the last_quality field.
	reviewitem.DefaultLastQuality = reviewitemDescLastQuality.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescDurationMs is the schema descriptor for duration_ms field.
	sessioneventDescDurationMs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sessionevent.DefaultDurationMs = sessioneventDescDurationMs.Default.(int64)
	windowsnapshotFields := schema.WindowSnapshot{}.Fields()
	_ = windowsnapshotFields
	// windowsnapshotDescUserID is the schema descriptor for user_id field.
	windowsnapshotDescUserID := windowsnapshotFields[0].Descriptor()
	// windowsnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	windowsnapshot.UserIDValidator = windowsnapshotDescUserID.Validators[0].(func(string) error)
	// windowsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	windowsnapshotDescUpdatedAt := windowsnapshotFields[3].Descriptor()
	// windowsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	windowsnapshot.DefaultUpdatedAt = windowsnapshotDescUpdatedAt.Default.(func() time.Time)
	// windowsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	windowsnapshot.UpdateDefaultUpdatedAt = windowsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
