// SPDX-License-Identifier: MIT

package schema

// Schema is a parsed rule tree. The zero value is an empty schema: it can be
// introspected but fails every validation with ErrEmptySchema.
type Schema struct {
	root MappingRule
}

// Sections returns the top-level section names in schema declaration order.
func (s *Schema) Sections() []string {
	names := make([]string, len(s.root.Fields))
	for i, f := range s.root.Fields {
		names[i] = f.Name
	}
	return names
}

// Rule returns the rule for a top-level section.
func (s *Schema) Rule(section string) (Rule, bool) {
	return s.root.Lookup(section)
}

// Sections returns the ordered top-level section names of a schema, failing
// with a *ValidationError caused by ErrEmptySchema when the schema is nil or
// has none.
func Sections(s *Schema) ([]string, error) {
	if s == nil || len(s.root.Fields) == 0 {
		return nil, &ValidationError{cause: ErrEmptySchema}
	}
	return s.Sections(), nil
}

// Validate checks a settings mapping against the schema. Empty settings fail
// with a *ValidationError caused by ErrEmptySettings, a nil or empty schema
// with one caused by ErrEmptySchema; the settings are checked first. Any rule
// failures are returned as a *ValidationError listing one Violation per
// broken rule. The settings are never mutated.
func Validate(settings map[string]any, s *Schema) error {
	if len(settings) == 0 {
		return &ValidationError{cause: ErrEmptySettings}
	}
	if s == nil || len(s.root.Fields) == 0 {
		return &ValidationError{cause: ErrEmptySchema}
	}

	rec := &recorder{}
	s.root.validate("", settings, rec)
	return rec.err()
}
