package gatekit

import (
	"fmt"

	"github.com/dmitrymomot/gatekit/schema"
)

// Registry binds schemas to request segments for one route: at most one
// schema per segment. Registration happens during route setup; after that
// the registry is read-only and safe for unsynchronized concurrent reads,
// because no request-time code path mutates it.
type Registry struct {
	schemas [segmentCount]*schema.Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a schema to a segment. Registering a second schema for
// the same segment is a definition error, as is a nil schema or an unknown
// segment value.
func (r *Registry) Register(seg Segment, s *schema.Schema) error {
	if !seg.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSegment, seg)
	}
	if s == nil {
		return fmt.Errorf("%w: segment %s", ErrNilSchema, seg)
	}
	if r.schemas[seg] != nil {
		return fmt.Errorf("%w: %s", ErrSegmentRegistered, seg)
	}
	r.schemas[seg] = s
	return nil
}

// MustRegister is Register that panics on a definition error. Routes are
// defined at startup, so a broken registration should prevent the process
// from serving at all.
func (r *Registry) MustRegister(seg Segment, s *schema.Schema) {
	if err := r.Register(seg, s); err != nil {
		panic(fmt.Errorf("gatekit: %w", err))
	}
}

// Schema returns the schema registered for the segment, if any.
func (r *Registry) Schema(seg Segment) (*schema.Schema, bool) {
	if !seg.valid() || r.schemas[seg] == nil {
		return nil, false
	}
	return r.schemas[seg], true
}

// Empty reports whether no segment has a schema.
func (r *Registry) Empty() bool {
	for _, s := range r.schemas {
		if s != nil {
			return false
		}
	}
	return true
}
