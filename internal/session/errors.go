package session

import "fmt"

// InvalidSessionStateError reports a lifecycle method called from the
// wrong state, such as SubmitAnswer before PresentNext or after End.
type InvalidSessionStateError struct {
	Op    string
	State State
}

func (e *InvalidSessionStateError) Error() string {
	return fmt.Sprintf("session: %s not allowed in state %s", e.Op, e.State)
}

// NoExerciseAvailableError reports that the content provider could not
// produce a usable candidate within the retry budget.
type NoExerciseAvailableError struct {
	Attempts int
	Err      error // last provider or conjugation failure, may be nil
}

func (e *NoExerciseAvailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session: no exercise available after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("session: no exercise available after %d attempts", e.Attempts)
}

func (e *NoExerciseAvailableError) Unwrap() error { return e.Err }

// RepositoryError wraps a persistence failure. Repository
// implementations create it; the orchestrator passes it through without
// rewrapping so callers see the storage failure directly.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }
