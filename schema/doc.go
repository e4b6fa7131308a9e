// Package schema declares field validation rules and evaluates them against
// already-decoded request data.
//
// A Schema is an ordered set of fields, each carrying a list of Rule values
// evaluated in declaration order. Rules are plain tagged-variant structs;
// the chained Builder (schema.String("name").Min(3).Required()) is a thin
// sugar layer over that fixed representation and adds no semantics of its
// own.
//
// # Architecture
//
// Schemas are built once during route setup with New or MustNew, which also
// catch definition mistakes: duplicate fields, dangling or self references,
// uncompilable patterns. A built schema is immutable and safe for
// unsynchronized concurrent reads; AllowUnknown returns a relaxed copy
// rather than mutating in place.
//
// Validate is pure computation over a map view of one request segment. It
// never performs I/O, never blocks, and keeps exactly one message per
// failing field, stopping at the field's first broken rule. Defaults and
// string-to-number/boolean coercions are substituted into the data view so
// callers observe the augmented values.
//
// # Usage
//
//	signup := schema.MustNew(
//		schema.String("email").Required(),
//		schema.String("password").Pattern(`^[a-zA-Z0-9]{3,30}$`).Required(),
//		schema.String("repeat_password").Ref("password").Required(),
//		schema.Number("age").Min(18),
//	)
//
//	if v := signup.Validate(data); v != nil {
//		// v.Keys lists failing fields, v.Message the first failure
//	}
package schema
