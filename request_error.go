package gatekit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// SegmentError describes the validation failure of a single request
// segment: which fields failed, in schema declaration order, and one
// representative message.
type SegmentError struct {
	Source  string   `json:"source"`
	Keys    []string `json:"keys"`
	Message string   `json:"message"`
}

// RequestError aggregates the segment failures of one request. It exists
// only when at least one segment failed, and it is the marker the
// Responder discriminates on: errors of any other type pass through the
// responder untouched.
type RequestError struct {
	segments [segmentCount]*SegmentError
}

func (e *RequestError) set(seg Segment, se *SegmentError) {
	if se.Keys == nil {
		se.Keys = []string{}
	}
	e.segments[seg] = se
}

// Segment returns the failure recorded for a segment, if any.
func (e *RequestError) Segment(seg Segment) (*SegmentError, bool) {
	if !seg.valid() || e.segments[seg] == nil {
		return nil, false
	}
	return e.segments[seg], true
}

// Segments returns the failing segments in their fixed processing order.
func (e *RequestError) Segments() []Segment {
	var out []Segment
	for _, seg := range Segments() {
		if e.segments[seg] != nil {
			out = append(out, seg)
		}
	}
	return out
}

// Len reports the number of failing segments.
func (e *RequestError) Len() int {
	n := 0
	for _, se := range e.segments {
		if se != nil {
			n++
		}
	}
	return n
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	var parts []string
	for _, seg := range Segments() {
		if se := e.segments[seg]; se != nil {
			parts = append(parts, fmt.Sprintf("%s: %s", seg, se.Message))
		}
	}
	if len(parts) == 0 {
		return "request validation failed"
	}
	return "request validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON renders the failing segments as a JSON object keyed by
// segment name. Go maps marshal in unspecified (or sorted) key order, so
// the object is built by hand to preserve the fixed segment order.
func (e *RequestError) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, seg := range Segments() {
		se := e.segments[seg]
		if se == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(seg.String())
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		body, err := json.Marshal(se)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
