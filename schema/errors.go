package schema

import "errors"

// Definition errors returned by New. They signal a broken schema and are
// meant to abort startup, never to surface per request.
var (
	// ErrEmptyFieldName is returned when a field is declared without a name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when two fields share a name within one schema.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownReference is returned when a reference rule names a field
	// that does not exist in the same schema.
	ErrUnknownReference = errors.New("reference to unknown field")

	// ErrSelfReference is returned when a field references itself.
	ErrSelfReference = errors.New("field references itself")

	// ErrInvalidPattern is returned when a pattern rule carries an
	// expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern expression")
)
