package types

import (
	"errors"
	"fmt"
)

// Sentinel SearchErrors, matching §7's propagation table. Callers branch
// on these with errors.Is; StoreError wraps the underlying DB error for
// logging without being fatal to the search itself (§4.3 failure
// semantics — a StoreError is logged and search continues; Search never
// returns one).
var (
	// ErrTimedOut is returned when the wall-clock budget (§3 timeout_s)
	// is exhausted before a candidate was accepted.
	ErrTimedOut = errors.New("ares: search timed out")
	// ErrExhausted is returned when the priority queue empties (or max
	// depth is reached everywhere) without any accepted candidate.
	ErrExhausted = errors.New("ares: search space exhausted, no solution found")
	// ErrInvalidInput is returned immediately, before any search, for
	// malformed input (currently: empty input).
	ErrInvalidInput = errors.New("ares: invalid input")
)

// StoreError wraps a Knowledge Store failure. The store package returns
// it from its own methods; ares.New and the search engine log it and
// carry on without the store (§4.3/§7), so it does not reach their
// callers.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("ares: store error: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err as a *StoreError, or returns nil if err is nil.
func NewStoreError(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
