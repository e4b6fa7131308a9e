package schema

import "regexp"

// Kind discriminates the rule variants a field may carry.
type Kind uint8

const (
	// KindType constrains the value to a primitive type.
	KindType Kind = iota
	// KindRequired makes the field mandatory when no default is declared.
	KindRequired
	// KindDefault substitutes a value when the field is absent.
	KindDefault
	// KindMin sets a lower bound: length for strings, value for numbers.
	KindMin
	// KindMax sets an upper bound: length for strings, value for numbers.
	KindMax
	// KindLen requires an exact string length.
	KindLen
	// KindPattern matches string values against a regular expression.
	KindPattern
	// KindRef requires equality with a sibling field's resolved value.
	KindRef
)

// Type names the primitive accepted by a KindType rule.
type Type uint8

const (
	TypeAny Type = iota
	TypeString
	TypeNumber
	TypeBool
	TypeObject
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "boolean"
	case TypeObject:
		return "object"
	default:
		return "any"
	}
}

// Rule is a single constraint on a field's value. Only the payload named by
// Kind is meaningful; the remaining fields are zero. Rules are immutable
// once the owning schema is built.
type Rule struct {
	Kind        Kind
	Type        Type    // KindType
	Bound       float64 // KindMin, KindMax, KindLen
	PatternExpr string  // KindPattern, compiled by New
	Default     any     // KindDefault
	Ref         string  // KindRef

	pattern *regexp.Regexp
}
