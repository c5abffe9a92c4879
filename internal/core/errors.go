package core

import (
	"errors"

	"github.com/coregx/sqlalias/internal/security"
)

// Predefined errors returned by sqlalias operations.
// All of them report caller contract violations; none is transient.
var (
	// ErrMaxLenTooSmall is returned when the maximum alias length cannot hold
	// even one character followed by the counter suffix.
	ErrMaxLenTooSmall = errors.New("maximum alias length too small")
	// ErrInvalidCounter is returned when a negative disambiguation counter is given.
	ErrInvalidCounter = errors.New("invalid alias counter")
	// ErrEmptyTableSet is returned when column pairs are aliased against an empty table mapping.
	ErrEmptyTableSet = errors.New("empty table alias set")
	// ErrUnknownTable is returned when a column pair references a table without an alias.
	ErrUnknownTable = errors.New("table has no alias")
	// ErrInvalidIdentifier is returned when a table or column name fails validation.
	ErrInvalidIdentifier = security.ErrInvalidIdentifier
	// ErrUnsupportedDialect is returned when an unknown SQL dialect is requested.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
	// ErrInvalidOption is returned when an Aliaser option carries an out-of-range value.
	ErrInvalidOption = errors.New("invalid aliaser option")
)

// WrapError wraps an error with additional context message.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
