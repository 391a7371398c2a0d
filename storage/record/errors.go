package record

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced record id does not exist.
// It is not retryable; repositories translate it to their domain's
// not-found error.
var ErrNotFound = errors.New("record not found")

// StoreError is a record store failure (network, remote 5xx, bad
// payload). Views surface it as a retryable error banner.
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func newStoreError(op, table string, err error) error {
	return &StoreError{Op: op, Table: table, Err: err}
}

// IsStoreError reports whether err (or its cause chain) is a store
// failure rather than a domain error.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
