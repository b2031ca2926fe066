// SPDX-License-Identifier: MIT

package schema

// Kind discriminates the rule variants.
type Kind uint8

const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Type enumerates the scalar value types of the rule language.
type Type uint8

const (
	TypeAny Type = iota // no type directive: any value passes the type check
	TypeString
	TypeInteger
	TypeFloat
	TypeNumber
	TypeBoolean
)

func (t Type) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// parseType maps a type directive value to its scalar Type. The dict and
// list type names build MappingRule and SequenceRule instead and are handled
// by the rule parser.
func parseType(name string) (Type, bool) {
	switch name {
	case "string":
		return TypeString, true
	case "integer":
		return TypeInteger, true
	case "float":
		return TypeFloat, true
	case "number":
		return TypeNumber, true
	case "boolean":
		return TypeBoolean, true
	}
	return TypeAny, false
}

// Rule is one node of a schema's rule tree. It is implemented by exactly
// ScalarRule, MappingRule and SequenceRule; the unexported methods keep the
// set closed.
type Rule interface {
	Kind() Kind
	required() bool
	validate(path string, value any, rec *recorder)
}

// Field pairs a mapping key with the rule its value must satisfy. Field
// slices keep schema declaration order.
type Field struct {
	Name string
	Rule Rule
}

// childPath joins a field name onto its parent path.
func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
