// SPDX-License-Identifier: MIT

package schema

import "errors"

var (
	// ErrEmptySettings classifies validation of a nil or empty settings mapping.
	// Use errors.Is(err, ErrEmptySettings) instead of string matching.
	ErrEmptySettings = errors.New("empty settings")

	// ErrEmptySchema classifies validation or introspection against a nil or
	// empty schema.
	ErrEmptySchema = errors.New("empty schema")

	// ErrUnknownDirective classifies rule specs using a directive this engine
	// does not support.
	ErrUnknownDirective = errors.New("unknown schema directive")

	// ErrUnknownType classifies type directives naming an unsupported type.
	ErrUnknownType = errors.New("unknown schema type")

	// ErrInvalidDirective classifies directives whose value or placement is
	// malformed.
	ErrInvalidDirective = errors.New("invalid schema directive")
)
