// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ManuGH/strictconf/internal/log"
	"github.com/ManuGH/strictconf/yamlio"
)

// Option adjusts a parsed schema.
type Option func(*Schema)

// AllowUnknown permits settings keys that have no top-level schema section.
func AllowUnknown() Option {
	return func(s *Schema) {
		s.root.AllowUnknown = true
	}
}

// Load reads and parses a schema file. Malformed files, including rule specs
// with unsupported or misplaced directives, fail with a *yamlio.FileError
// wrapping the cause.
func Load(path string, opts ...Option) (*Schema, error) {
	node, err := yamlio.ReadNode(path)
	if err != nil {
		return nil, err
	}

	s, err := fromNode(node)
	if err != nil {
		return nil, &yamlio.FileError{Path: path, Err: err}
	}
	for _, opt := range opts {
		opt(s)
	}

	logger := log.WithComponent("schema")
	logger.Debug().
		Str("path", path).
		Int("sections", len(s.root.Fields)).
		Msg("schema loaded")
	return s, nil
}

// Parse parses a schema from raw YAML bytes, for schemas embedded in the
// binary or assembled at runtime.
func Parse(data []byte, opts ...Option) (*Schema, error) {
	node, err := yamlio.DecodeNode(data)
	if err != nil {
		return nil, err
	}

	s, err := fromNode(node)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func fromNode(node *yaml.Node) (*Schema, error) {
	s := &Schema{}
	if node == nil {
		return s, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema root: %w", yamlio.ErrNotMapping)
	}

	fields, err := parseFields("", node, make(map[*yaml.Node]bool))
	if err != nil {
		return nil, err
	}
	s.root.Fields = fields
	return s, nil
}

// parseFields walks a mapping node's key/value pairs in declaration order.
// active carries the rule-spec nodes currently being parsed so anchor cycles
// fail instead of recursing forever.
func parseFields(path string, node *yaml.Node, active map[*yaml.Node]bool) ([]Field, error) {
	fields := make([]Field, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: schema keys must be plain strings", keyNode.Line)
		}
		name := keyNode.Value
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("line %d: duplicate schema field %q", keyNode.Line, name)
		}
		seen[name] = struct{}{}

		rule, err := parseRule(childPath(path, name), valNode, active)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Rule: rule})
	}
	return fields, nil
}

func parseRule(path string, n *yaml.Node, active map[*yaml.Node]bool) (Rule, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: rule %q: %w: rule spec must be a mapping of directives", n.Line, path, ErrInvalidDirective)
	}
	// Anchors may be shared between rules, but a spec reachable from itself
	// would never finish parsing.
	if active[n] {
		return nil, fmt.Errorf("line %d: rule %q: %w: anchor cycle in rule spec", n.Line, path, ErrInvalidDirective)
	}
	active[n] = true
	defer delete(active, n)

	d := directives{path: path, active: active}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := d.set(n.Content[i], n.Content[i+1]); err != nil {
			return nil, err
		}
	}
	return d.build()
}

// directives holds one rule spec's raw directive values before they are
// shaped into a variant.
type directives struct {
	path         string
	active       map[*yaml.Node]bool
	typeName     string
	typeLine     int
	required     bool
	nullable     bool
	allowed      []any
	min, max     *float64
	minLength    *int
	maxLength    *int
	schemaNode   *yaml.Node
	allowUnknown *bool
}

func (d *directives) set(key, val *yaml.Node) error {
	switch key.Value {
	case "type":
		if err := val.Decode(&d.typeName); err != nil {
			return d.bad(key, err)
		}
		d.typeLine = val.Line
	case "required":
		if err := val.Decode(&d.required); err != nil {
			return d.bad(key, err)
		}
	case "nullable":
		if err := val.Decode(&d.nullable); err != nil {
			return d.bad(key, err)
		}
	case "allowed":
		if err := val.Decode(&d.allowed); err != nil {
			return d.bad(key, err)
		}
		for _, a := range d.allowed {
			switch a.(type) {
			case map[string]any, []any:
				return fmt.Errorf("line %d: rule %q: %w: allowed values must be scalars", key.Line, d.path, ErrInvalidDirective)
			}
		}
	case "min":
		d.min = new(float64)
		if err := val.Decode(d.min); err != nil {
			return d.bad(key, err)
		}
	case "max":
		d.max = new(float64)
		if err := val.Decode(d.max); err != nil {
			return d.bad(key, err)
		}
	case "minlength":
		d.minLength = new(int)
		if err := val.Decode(d.minLength); err != nil {
			return d.bad(key, err)
		}
	case "maxlength":
		d.maxLength = new(int)
		if err := val.Decode(d.maxLength); err != nil {
			return d.bad(key, err)
		}
	case "schema":
		if val.Kind == yaml.AliasNode {
			val = val.Alias
		}
		d.schemaNode = val
	case "allow_unknown":
		d.allowUnknown = new(bool)
		if err := val.Decode(d.allowUnknown); err != nil {
			return d.bad(key, err)
		}
	default:
		return fmt.Errorf("line %d: rule %q: %w: %q", key.Line, d.path, ErrUnknownDirective, key.Value)
	}
	return nil
}

func (d *directives) bad(key *yaml.Node, err error) error {
	return fmt.Errorf("line %d: rule %q: %w %q: %v", key.Line, d.path, ErrInvalidDirective, key.Value, err)
}

func (d *directives) build() (Rule, error) {
	switch d.typeName {
	case "dict":
		return d.buildMapping()
	case "list":
		return d.buildSequence()
	case "":
		if d.schemaNode != nil {
			return nil, fmt.Errorf("rule %q: %w: schema directive requires type dict or list", d.path, ErrInvalidDirective)
		}
		return d.buildScalar(TypeAny)
	default:
		t, ok := parseType(d.typeName)
		if !ok {
			return nil, fmt.Errorf("line %d: rule %q: %w: %q", d.typeLine, d.path, ErrUnknownType, d.typeName)
		}
		return d.buildScalar(t)
	}
}

func (d *directives) buildScalar(t Type) (Rule, error) {
	if d.schemaNode != nil {
		return nil, fmt.Errorf("rule %q: %w: schema directive requires type dict or list", d.path, ErrInvalidDirective)
	}
	if d.allowUnknown != nil {
		return nil, fmt.Errorf("rule %q: %w: allow_unknown requires type dict", d.path, ErrInvalidDirective)
	}
	if numeric := t == TypeInteger || t == TypeFloat || t == TypeNumber; !numeric && (d.min != nil || d.max != nil) {
		return nil, fmt.Errorf("rule %q: %w: min and max require a numeric type", d.path, ErrInvalidDirective)
	}
	if t != TypeString && (d.minLength != nil || d.maxLength != nil) {
		return nil, fmt.Errorf("rule %q: %w: minlength and maxlength require string type", d.path, ErrInvalidDirective)
	}

	return &ScalarRule{
		Type:      t,
		Required:  d.required,
		Nullable:  d.nullable,
		Allowed:   d.allowed,
		Min:       d.min,
		Max:       d.max,
		MinLength: d.minLength,
		MaxLength: d.maxLength,
	}, nil
}

func (d *directives) buildMapping() (Rule, error) {
	if err := d.rejectScalarConstraints("dict"); err != nil {
		return nil, err
	}

	m := &MappingRule{Required: d.required, Nullable: d.nullable}
	switch {
	case d.schemaNode != nil:
		if d.schemaNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: rule %q: %w: dict schema must map field names to rule specs", d.schemaNode.Line, d.path, ErrInvalidDirective)
		}
		fields, err := parseFields(d.path, d.schemaNode, d.active)
		if err != nil {
			return nil, err
		}
		m.Fields = fields
	default:
		// A dict without a field spec accepts any content.
		m.AllowUnknown = true
	}
	if d.allowUnknown != nil {
		m.AllowUnknown = *d.allowUnknown
	}
	return m, nil
}

func (d *directives) buildSequence() (Rule, error) {
	if d.allowed != nil || d.min != nil || d.max != nil {
		return nil, fmt.Errorf("rule %q: %w: constrain list elements via the schema directive", d.path, ErrInvalidDirective)
	}
	if d.allowUnknown != nil {
		return nil, fmt.Errorf("rule %q: %w: allow_unknown requires type dict", d.path, ErrInvalidDirective)
	}

	seq := &SequenceRule{
		Required: d.required,
		Nullable: d.nullable,
		MinItems: d.minLength,
		MaxItems: d.maxLength,
	}
	if d.schemaNode != nil {
		elem, err := parseRule(d.path+"[]", d.schemaNode, d.active)
		if err != nil {
			return nil, err
		}
		seq.Elem = elem
	}
	return seq, nil
}

func (d *directives) rejectScalarConstraints(typeName string) error {
	var offending string
	switch {
	case d.allowed != nil:
		offending = "allowed"
	case d.min != nil:
		offending = "min"
	case d.max != nil:
		offending = "max"
	case d.minLength != nil:
		offending = "minlength"
	case d.maxLength != nil:
		offending = "maxlength"
	default:
		return nil
	}
	return fmt.Errorf("rule %q: %w: %s does not apply to %s rules", d.path, ErrInvalidDirective, offending, typeName)
}
