// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"unicode/utf8"
)

// ScalarRule constrains a single leaf value.
type ScalarRule struct {
	Type      Type
	Required  bool
	Nullable  bool
	Allowed   []any    // permitted values; empty means unconstrained
	Min       *float64 // numeric lower bound, inclusive
	Max       *float64 // numeric upper bound, inclusive
	MinLength *int     // string length bounds, in runes
	MaxLength *int
}

func (r *ScalarRule) Kind() Kind { return KindScalar }

func (r *ScalarRule) required() bool { return r.Required }

func (r *ScalarRule) validate(path string, value any, rec *recorder) {
	if value == nil {
		if !r.Nullable {
			rec.add(path, "null value not allowed", value)
		}
		return
	}

	if !r.typeOK(value) {
		rec.add(path, fmt.Sprintf("must be of %s type", r.Type), value)
		return
	}

	if len(r.Allowed) > 0 && !allowedContains(r.Allowed, value) {
		rec.add(path, fmt.Sprintf("unallowed value %v", value), value)
	}

	// The parser only attaches min/max to numeric types, so asFloat cannot
	// fail once the type check passed.
	if r.Min != nil || r.Max != nil {
		n, _ := asFloat(value)
		if r.Min != nil && n < *r.Min {
			rec.add(path, fmt.Sprintf("must be at least %v, got %v", *r.Min, value), value)
		}
		if r.Max != nil && n > *r.Max {
			rec.add(path, fmt.Sprintf("must be at most %v, got %v", *r.Max, value), value)
		}
	}

	if r.MinLength != nil || r.MaxLength != nil {
		if s, ok := value.(string); ok {
			n := utf8.RuneCountInString(s)
			if r.MinLength != nil && n < *r.MinLength {
				rec.add(path, fmt.Sprintf("must have at least %d characters, got %d", *r.MinLength, n), value)
			}
			if r.MaxLength != nil && n > *r.MaxLength {
				rec.add(path, fmt.Sprintf("must have at most %d characters, got %d", *r.MaxLength, n), value)
			}
		}
	}
}

func (r *ScalarRule) typeOK(value any) bool {
	switch r.Type {
	case TypeAny:
		return true
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInteger:
		return isInt(value)
	case TypeFloat, TypeNumber:
		_, ok := asFloat(value)
		return ok
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}

// asFloat reports value as a float64 when it carries any of the numeric types
// the YAML decoder produces. Booleans are deliberately not numeric.
func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func isInt(value any) bool {
	switch value.(type) {
	case int, int64, uint64:
		return true
	}
	return false
}

func allowedContains(allowed []any, value any) bool {
	for _, a := range allowed {
		if equalValue(a, value) {
			return true
		}
	}
	return false
}

// equalValue compares scalars, with numeric values compared by magnitude so
// that an allowed 5 matches a 5.0 read from a settings file.
func equalValue(a, b any) bool {
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		return ok && af == bf
	}
	return a == b
}
