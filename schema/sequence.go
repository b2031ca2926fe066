// SPDX-License-Identifier: MIT

package schema

import "fmt"

// SequenceRule constrains a list value. Elem, when set, is applied to every
// element; MinItems and MaxItems bound the list length.
type SequenceRule struct {
	Elem     Rule
	Required bool
	Nullable bool
	MinItems *int
	MaxItems *int
}

func (r *SequenceRule) Kind() Kind { return KindSequence }

func (r *SequenceRule) required() bool { return r.Required }

func (r *SequenceRule) validate(path string, value any, rec *recorder) {
	if value == nil {
		if !r.Nullable {
			rec.add(path, "null value not allowed", value)
		}
		return
	}

	items, ok := value.([]any)
	if !ok {
		rec.add(path, "must be of list type", value)
		return
	}

	if r.MinItems != nil && len(items) < *r.MinItems {
		rec.add(path, fmt.Sprintf("must have at least %d items, got %d", *r.MinItems, len(items)), value)
	}
	if r.MaxItems != nil && len(items) > *r.MaxItems {
		rec.add(path, fmt.Sprintf("must have at most %d items, got %d", *r.MaxItems, len(items)), value)
	}

	if r.Elem == nil {
		return
	}
	for i, item := range items {
		r.Elem.validate(fmt.Sprintf("%s[%d]", path, i), item, rec)
	}
}
