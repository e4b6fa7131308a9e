package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Violation reports a failed validation of one data view against a schema.
// Keys lists every failing field in schema declaration order, with
// undeclared keys sorted and appended. Message is the first failing
// field's message; one representative message is kept per violation.
type Violation struct {
	Keys    []string
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return v.Message
}

// Validate evaluates the data view against the schema and returns nil when
// every rule passes. Rules for a field run in declaration order and stop at
// the field's first failure; a type mismatch therefore short-circuits the
// rest of the field's rules. Absent fields receive their declared default
// (substituted into data and validated like any present value) or fail when
// required; otherwise absence is tolerated. In strict mode every data key
// not declared in the schema fails with an "is not allowed" message.
//
// Validate mutates data: defaults are substituted and string values are
// coerced in place when a number or boolean type rule accepts them, so the
// caller observes the augmented view. Validation performs no I/O and is
// safe to run concurrently across independent data views.
func (s *Schema) Validate(data map[string]any) *Violation {
	if data == nil {
		data = make(map[string]any)
	}

	var keys []string
	messages := make(map[string]string)
	failed := make(map[string]bool)

	fail := func(key, message string) {
		keys = append(keys, key)
		messages[key] = message
		failed[key] = true
	}

	for _, f := range s.fields {
		value, present := data[f.Name]
		if !present {
			def, hasDefault := defaultValue(f.Rules)
			switch {
			case hasDefault:
				data[f.Name] = def
				value = def
			case hasKind(f.Rules, KindRequired):
				fail(f.Name, fmt.Sprintf("%q is required", f.Name))
				continue
			default:
				continue
			}
		}

		for _, r := range f.Rules {
			if r.Kind == KindRequired || r.Kind == KindDefault {
				continue
			}
			ok, message := s.eval(f.Name, value, r, data, failed)
			if !ok {
				fail(f.Name, message)
				break
			}
			// A type rule may have coerced the stored value.
			value = data[f.Name]
		}
	}

	if !s.allowUnknown {
		var unknown []string
		for key := range data {
			if _, declared := s.index[key]; !declared {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			fail(key, fmt.Sprintf("%q is not allowed", key))
		}
	}

	if len(keys) == 0 {
		return nil
	}
	return &Violation{Keys: keys, Message: messages[keys[0]]}
}

// eval applies a single value rule. It reports whether the rule passed and,
// when it did not, the message to attribute to the field.
func (s *Schema) eval(field string, value any, r Rule, data map[string]any, failed map[string]bool) (bool, string) {
	switch r.Kind {
	case KindType:
		return s.evalType(field, value, r, data)

	case KindMin:
		switch v := value.(type) {
		case string:
			if len(v) < int(r.Bound) {
				return false, fmt.Sprintf("%q length must be at least %s characters long", field, formatBound(r.Bound))
			}
		default:
			n, ok := numberValue(value)
			if !ok {
				return false, fmt.Sprintf("%q must be a number", field)
			}
			if n < r.Bound {
				return false, fmt.Sprintf("%q must be greater than or equal to %s", field, formatBound(r.Bound))
			}
		}
		return true, ""

	case KindMax:
		switch v := value.(type) {
		case string:
			if len(v) > int(r.Bound) {
				return false, fmt.Sprintf("%q length must be at most %s characters long", field, formatBound(r.Bound))
			}
		default:
			n, ok := numberValue(value)
			if !ok {
				return false, fmt.Sprintf("%q must be a number", field)
			}
			if n > r.Bound {
				return false, fmt.Sprintf("%q must be less than or equal to %s", field, formatBound(r.Bound))
			}
		}
		return true, ""

	case KindLen:
		v, ok := value.(string)
		if !ok {
			return false, fmt.Sprintf("%q must be a string", field)
		}
		if len(v) != int(r.Bound) {
			return false, fmt.Sprintf("%q length must be %s characters long", field, formatBound(r.Bound))
		}
		return true, ""

	case KindPattern:
		v, ok := value.(string)
		if !ok {
			return false, fmt.Sprintf("%q must be a string", field)
		}
		if !r.pattern.MatchString(v) {
			return false, fmt.Sprintf("%q fails to match the required pattern", field)
		}
		return true, ""

	case KindRef:
		// The sibling's value is its resolved one: defaults substituted and
		// coercions applied by the time it was evaluated. A sibling that
		// already failed cannot anchor a comparison.
		if failed[r.Ref] {
			return false, fmt.Sprintf("%q must be [ref:%s]", field, r.Ref)
		}
		sibling, present := data[r.Ref]
		if !present || !reflect.DeepEqual(value, sibling) {
			return false, fmt.Sprintf("%q must be [ref:%s]", field, r.Ref)
		}
		return true, ""
	}

	return true, ""
}

// evalType checks the value against the rule's primitive type, coercing
// string representations of numbers and booleans in place. String-valued
// segments (query, params, headers, cookies) only ever carry strings, so
// without coercion numeric rules would be unusable there.
func (s *Schema) evalType(field string, value any, r Rule, data map[string]any) (bool, string) {
	switch r.Type {
	case TypeString:
		if _, ok := value.(string); ok {
			return true, ""
		}
	case TypeNumber:
		if _, ok := numberValue(value); ok {
			return true, ""
		}
		if v, ok := value.(string); ok {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				data[field] = n
				return true, ""
			}
		}
	case TypeBool:
		if _, ok := value.(bool); ok {
			return true, ""
		}
		if v, ok := value.(string); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				data[field] = b
				return true, ""
			}
		}
	case TypeObject:
		if _, ok := value.(map[string]any); ok {
			return true, ""
		}
		return false, fmt.Sprintf("%q must be of type object", field)
	default:
		return true, ""
	}
	return false, fmt.Sprintf("%q must be a %s", field, r.Type)
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func defaultValue(rules []Rule) (any, bool) {
	for _, r := range rules {
		if r.Kind == KindDefault {
			return r.Default, true
		}
	}
	return nil, false
}

func hasKind(rules []Rule, k Kind) bool {
	for _, r := range rules {
		if r.Kind == k {
			return true
		}
	}
	return false
}

func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}
