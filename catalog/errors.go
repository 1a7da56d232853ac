package catalog

import (
	"fmt"
)

// QueryError is returned if a call to the provider failed.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause of github.com/pkg/errors see the provider error.
func (e *QueryError) Cause() error {
	return e.Err
}

func newQueryError(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
