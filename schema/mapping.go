// SPDX-License-Identifier: MIT

package schema

import "sort"

// MappingRule constrains a nested mapping. Fields keep declaration order so
// violations and introspection follow the schema file. A rule parsed from a
// dict spec without a schema directive accepts any content (AllowUnknown is
// true); naming fields closes the mapping unless allow_unknown reopens it.
type MappingRule struct {
	Fields       []Field
	Required     bool
	Nullable     bool
	AllowUnknown bool
}

func (r *MappingRule) Kind() Kind { return KindMapping }

func (r *MappingRule) required() bool { return r.Required }

// Lookup returns the rule for the named field.
func (r *MappingRule) Lookup(name string) (Rule, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Rule, true
		}
	}
	return nil, false
}

func (r *MappingRule) validate(path string, value any, rec *recorder) {
	if value == nil {
		if !r.Nullable {
			rec.add(path, "null value not allowed", value)
		}
		return
	}

	doc, ok := value.(map[string]any)
	if !ok {
		rec.add(path, "must be of dict type", value)
		return
	}

	for _, f := range r.Fields {
		child := childPath(path, f.Name)
		v, present := doc[f.Name]
		if !present {
			if f.Rule.required() {
				rec.add(child, "required field is missing", nil)
			}
			continue
		}
		f.Rule.validate(child, v, rec)
	}

	if r.AllowUnknown {
		return
	}
	var unknown []string
	for key := range doc {
		if _, known := r.Lookup(key); !known {
			unknown = append(unknown, key)
		}
	}
	// Map iteration order is random; sort for deterministic violations.
	sort.Strings(unknown)
	for _, key := range unknown {
		rec.add(childPath(path, key), "unknown field", doc[key])
	}
}
