package schema

// Builder accumulates rules for one field in declaration order. It is the
// convenience layer over the explicit Rule list; the evaluation contract is
// defined entirely by the rules it produces.
//
// Example:
//
//	s, err := schema.New(
//		schema.String("name").Min(3).Max(30).Required(),
//		schema.Number("age").Min(18).Default(21),
//		schema.String("repeat_password").Ref("password").Required(),
//	)
type Builder struct {
	name  string
	rules []Rule
}

// Field declares a field without a type constraint.
func Field(name string) *Builder {
	return &Builder{name: name}
}

// String declares a field whose value must be a string.
func String(name string) *Builder {
	return Field(name).typed(TypeString)
}

// Number declares a field whose value must be a number. String values that
// parse as numbers are coerced, so the rule works for query, path, header
// and cookie data as well as JSON bodies.
func Number(name string) *Builder {
	return Field(name).typed(TypeNumber)
}

// Bool declares a field whose value must be a boolean. String values
// "true" and "false" are coerced.
func Bool(name string) *Builder {
	return Field(name).typed(TypeBool)
}

// Object declares a field whose value must be a JSON object.
func Object(name string) *Builder {
	return Field(name).typed(TypeObject)
}

func (b *Builder) typed(t Type) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindType, Type: t})
	return b
}

// Required makes the field mandatory unless a default is declared.
func (b *Builder) Required() *Builder {
	b.rules = append(b.rules, Rule{Kind: KindRequired})
	return b
}

// Default substitutes v when the field is absent from the data. The
// substituted value is validated by the field's remaining rules.
func (b *Builder) Default(v any) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindDefault, Default: v})
	return b
}

// Min sets the lower bound: minimum length for strings, minimum value for
// numbers.
func (b *Builder) Min(n float64) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindMin, Bound: n})
	return b
}

// Max sets the upper bound: maximum length for strings, maximum value for
// numbers.
func (b *Builder) Max(n float64) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindMax, Bound: n})
	return b
}

// Len requires an exact string length.
func (b *Builder) Len(n int) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindLen, Bound: float64(n)})
	return b
}

// Pattern matches string values against a regular expression. The
// expression is compiled by New so a broken pattern fails at definition
// time rather than mid-request.
func (b *Builder) Pattern(expr string) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindPattern, PatternExpr: expr})
	return b
}

// Ref requires the field's value to equal the resolved value of a sibling
// field in the same schema. The sibling must exist; New rejects dangling
// references.
func (b *Builder) Ref(sibling string) *Builder {
	b.rules = append(b.rules, Rule{Kind: KindRef, Ref: sibling})
	return b
}
