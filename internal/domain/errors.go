package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMalformed    = errors.New("malformed content")
	ErrInvalidInput = errors.New("invalid input")

	// ErrEditAndRerun signals a handled early exit: defaults were written
	// and the user should edit them before running again.
	ErrEditAndRerun = errors.New("defaults written; edit the file and rerun")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindMalformed    ErrorKind = "malformed"
	KindInvalidInput ErrorKind = "invalid_input"
	KindIO           ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on store packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Invalid builds an invalid_input error for op.
func Invalid(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}
