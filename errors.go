package gatekit

import "errors"

// Registry definition errors. Like schema definition errors they abort
// route setup and never surface per request.
var (
	// ErrSegmentRegistered is returned when a segment already has a schema
	// for the route.
	ErrSegmentRegistered = errors.New("segment already has a schema")

	// ErrUnknownSegment is returned for a segment value outside the
	// declared enumeration.
	ErrUnknownSegment = errors.New("unknown segment")

	// ErrNilSchema is returned when registering a nil schema.
	ErrNilSchema = errors.New("nil schema")
)
