// Package errors provides an API for errors across the application.
package errors

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound indicates that the requested account id has no
// row in the store. Distinct from a store connectivity failure.
var ErrAccountNotFound = errors.New("account not found")

// StoreError wraps a failed store operation with the operation name.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}
