// SPDX-License-Identifier: MIT

package strictconf

import (
	"fmt"

	"github.com/ManuGH/strictconf/schema"
	"github.com/ManuGH/strictconf/yamlio"
)

// The collaborator error types are re-exported so callers can handle the
// whole taxonomy from this package alone.
type (
	// FileError reports a settings or schema file that could not be read,
	// parsed or written.
	FileError = yamlio.FileError

	// ValidationError reports schema rule failures or empty inputs.
	ValidationError = schema.ValidationError

	// Violation is a single rule failure inside a ValidationError.
	Violation = schema.Violation
)

var (
	// ErrEmptySettings classifies validation of an empty settings mapping.
	// Use errors.Is(err, ErrEmptySettings) instead of string matching.
	ErrEmptySettings = schema.ErrEmptySettings

	// ErrEmptySchema classifies validation or introspection against an empty
	// schema.
	ErrEmptySchema = schema.ErrEmptySchema
)

// ConversionError reports a settings mapping whose shape does not fit the
// target type.
type ConversionError struct {
	Target string // name of the target type
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert settings to %s: %v", e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
