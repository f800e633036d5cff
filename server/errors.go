package server

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequestLine = errors.New("request line is empty or invalid")
	ErrMissingMethod      = errors.New("request line is missing the method")
	ErrMissingPath        = errors.New("request line is missing the path")
	ErrUnrecognizedMethod = errors.New("method is not recognized")

	// ErrServerClosed is returned by Serve once its context is cancelled.
	ErrServerClosed = errors.New("server closed")
)

// IOError wraps a transport or filesystem failure hit while serving a
// connection.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
