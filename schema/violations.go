// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"strings"
)

// Violation records a single schema rule failure.
type Violation struct {
	Path    string // dotted field path; list elements are indexed, e.g. ships[1].speed
	Value   any    // the offending value
	Message string // human-readable reason
}

// Error implements the error interface.
func (v Violation) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", v.Path, v.Message)
}

// ValidationError bundles the failures of one validation run. Rule failures
// carry one Violation per broken rule, ordered by schema declaration.
// Empty-input failures carry ErrEmptySettings or ErrEmptySchema as their
// cause instead.
type ValidationError struct {
	cause      error
	violations []Violation
}

// Violations returns the individual rule failures.
func (e *ValidationError) Violations() []Violation {
	return e.violations
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}

	switch len(e.violations) {
	case 0:
		return "validation failed"
	case 1:
		return e.violations[0].Error()
	}

	msgs := make([]string, len(e.violations))
	for i, v := range e.violations {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the empty-input cause for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// recorder accumulates violations during a validation walk.
type recorder struct {
	violations []Violation
}

func (r *recorder) add(path, message string, value any) {
	r.violations = append(r.violations, Violation{
		Path:    path,
		Value:   value,
		Message: message,
	})
}

// err converts the accumulated violations into an error value, or nil when
// the walk recorded none.
func (r *recorder) err() error {
	if len(r.violations) == 0 {
		return nil
	}

	copied := make([]Violation, len(r.violations))
	copy(copied, r.violations)

	return &ValidationError{violations: copied}
}
