package gatekit

// Segment identifies a validated part of an incoming request. Segments are
// always processed in the declared order, which fixes both the evaluation
// order and the ordering of segment entries in error output.
type Segment uint8

const (
	Body Segment = iota
	Query
	Params
	Headers
	Cookies
	SignedCookies
)

const segmentCount = int(SignedCookies) + 1

// String returns the segment's wire name as it appears in the validation
// object of an error response.
func (s Segment) String() string {
	switch s {
	case Body:
		return "body"
	case Query:
		return "query"
	case Params:
		return "params"
	case Headers:
		return "headers"
	case Cookies:
		return "cookies"
	case SignedCookies:
		return "signedCookies"
	default:
		return "unknown"
	}
}

func (s Segment) valid() bool {
	return int(s) < segmentCount
}

// Segments returns all segments in their fixed processing order.
func Segments() []Segment {
	return []Segment{Body, Query, Params, Headers, Cookies, SignedCookies}
}
