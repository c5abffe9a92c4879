// Package security validates the table and column names handed to sqlalias
// before any alias is derived from them.
package security

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidIdentifier is returned for names that fail validation.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Validator validates identifiers against the allowed character set.
type Validator struct {
	pattern *regexp.Regexp
	strict  bool
}

// ValidatorOption configures the Validator.
type ValidatorOption func(*Validator)

// WithStrict enables strict validation mode: names must be plain SQL
// identifiers (a letter or underscore followed by letters, digits and
// underscores).
func WithStrict(strict bool) ValidatorOption {
	return func(v *Validator) {
		v.strict = strict
	}
}

var (
	// identPattern accepts ASCII letters, digits and the word separators
	// understood by the tokenizer.
	identPattern = regexp.MustCompile(`^[A-Za-z0-9_$ -]+$`)
	// strictIdentPattern accepts unquoted SQL identifiers only.
	strictIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// NewValidator creates a new identifier validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}

	for _, opt := range opts {
		opt(v)
	}

	v.pattern = identPattern
	if v.strict {
		v.pattern = strictIdentPattern
	}

	return v
}

// Strict reports whether the validator runs in strict mode.
func (v *Validator) Strict() bool {
	return v.strict
}

// ValidateIdentifier checks a single table or column name.
func (v *Validator) ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}
	if !v.pattern.MatchString(name) {
		return fmt.Errorf("%w: %q contains unsupported characters", ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateIdentifiers checks every name and reports the first failure
// together with its index.
func (v *Validator) ValidateIdentifiers(names []string) error {
	for i, name := range names {
		if err := v.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("name at index %d: %w", i, err)
		}
	}
	return nil
}
