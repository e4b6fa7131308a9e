package schema

import (
	"fmt"
	"regexp"
)

// FieldSpec is one declared field: a name plus its rules in declaration
// order.
type FieldSpec struct {
	Name  string
	Rules []Rule
}

// Schema is an ordered set of field rules for one request segment plus an
// unknown-field policy. Schemas are built once during route setup and are
// read-only afterwards, so concurrent use from request handlers needs no
// synchronization.
type Schema struct {
	fields       []FieldSpec
	index        map[string]int
	allowUnknown bool
}

// New builds a schema from field declarations. It validates the definition
// itself: field names must be unique and non-empty, reference rules must
// name an existing sibling, and pattern expressions must compile. A
// definition error here should abort startup.
func New(fields ...*Builder) (*Schema, error) {
	s := &Schema{
		fields: make([]FieldSpec, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, b := range fields {
		if b == nil {
			continue
		}
		if b.name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, exists := s.index[b.name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, b.name)
		}

		rules := make([]Rule, len(b.rules))
		copy(rules, b.rules)
		for i := range rules {
			if rules[i].Kind != KindPattern {
				continue
			}
			re, err := regexp.Compile(rules[i].PatternExpr)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidPattern, b.name, err)
			}
			rules[i].pattern = re
		}

		s.index[b.name] = len(s.fields)
		s.fields = append(s.fields, FieldSpec{Name: b.name, Rules: rules})
	}

	for _, f := range s.fields {
		for _, r := range f.Rules {
			if r.Kind != KindRef {
				continue
			}
			if r.Ref == f.Name {
				return nil, fmt.Errorf("%w: %q", ErrSelfReference, f.Name)
			}
			if _, ok := s.index[r.Ref]; !ok {
				return nil, fmt.Errorf("%w: field %q references %q", ErrUnknownReference, f.Name, r.Ref)
			}
		}
	}

	return s, nil
}

// MustNew is New that panics on a definition error. Schemas are defined at
// startup, so a broken definition should prevent the process from serving
// at all.
func MustNew(fields ...*Builder) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(fmt.Errorf("schema: %w", err))
	}
	return s
}

// AllowUnknown returns a copy of the schema that tolerates data keys not
// declared in it. The receiver is left unchanged.
func (s *Schema) AllowUnknown() *Schema {
	c := *s
	c.allowUnknown = true
	return &c
}

// Len reports the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}
