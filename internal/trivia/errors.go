package trivia

import "fmt"

// InsufficientDataError reports that the dataset holds fewer matches than the
// sampler's minimum viable pool. Retrying does not help, so callers surface it
// directly instead of looping.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient match data: store holds %d matches, need at least %d", e.Have, e.Need)
}

// StoreAccessError wraps a failed dataset read with the operation that issued it.
type StoreAccessError struct {
	Op  string
	Err error
}

func (e *StoreAccessError) Error() string {
	return fmt.Sprintf("dataset %s failed: %v", e.Op, e.Err)
}

func (e *StoreAccessError) Unwrap() error { return e.Err }

// MalformedQuestionError reports a generator defect caught by contract
// validation. It never reaches the HTTP boundary: the supervisor regenerates
// through the match outcome generator instead.
type MalformedQuestionError struct {
	Reason string
}

func (e *MalformedQuestionError) Error() string {
	return "malformed question: " + e.Reason
}
