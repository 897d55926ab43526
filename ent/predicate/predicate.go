// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// ReviewItem is the predicate function for reviewitem builders.
type ReviewItem func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// WindowSnapshot is the predicate function for windowsnapshot builders.
type WindowSnapshot func(*sql.Selector)
