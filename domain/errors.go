package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller may not touch the item
	ErrForbidden = errors.New("you are not allowed to modify this Item")
	// ErrTooManyEdits will throw if an edit drifts too far from the original content
	ErrTooManyEdits = errors.New("too many edits from the original content")
	// ErrStoreFailure wraps every failure reported by the underlying store
	ErrStoreFailure = errors.New("store failure")
	// ErrCacheMiss is returned by cache implementations when a key is absent
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleWrite is returned when a versioned update lost a race
	ErrStaleWrite = errors.New("stale write")

	// ErrUsernameTaken is a Conflict on the case-insensitive username
	ErrUsernameTaken = fmt.Errorf("username already taken: %w", ErrConflict)
)

// storeError keeps the failing operation and the driver error while matching ErrStoreFailure.
type storeError struct {
	op  string
	err error
}

func (e *storeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreFailure, e.op, e.err)
}

func (e *storeError) Unwrap() []error {
	return []error{ErrStoreFailure, e.err}
}

// StoreFailure wraps err so that errors.Is(err, ErrStoreFailure) holds.
// A nil err stays nil.
func StoreFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storeError{op: op, err: err}
}

// CascadeStep is the outcome of one leg of a cascading delete.
type CascadeStep struct {
	Name    string
	Deleted int64
	Err     error
}

// CascadeReport aggregates the legs of a best-effort cascade.
type CascadeReport struct {
	Steps []CascadeStep
}

// Failed returns the legs that reported an error.
func (r CascadeReport) Failed() []CascadeStep {
	var res []CascadeStep
	for _, s := range r.Steps {
		if s.Err != nil {
			res = append(res, s)
		}
	}
	return res
}

// Err returns a *CascadeError when any leg failed, nil otherwise.
func (r CascadeReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	return &CascadeError{Failed: failed}
}

// CascadeError reports the failed legs of a cascade. The other legs still ran.
type CascadeError struct {
	Failed []CascadeStep
}

func (e *CascadeError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, s := range e.Failed {
		parts = append(parts, fmt.Sprintf("%s: %v", s.Name, s.Err))
	}
	return "cascade incomplete: " + strings.Join(parts, "; ")
}

func (e *CascadeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, s := range e.Failed {
		errs = append(errs, s.Err)
	}
	return errs
}
