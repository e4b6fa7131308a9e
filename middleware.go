package gatekit

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/gatekit/pkg/cookiesign"
	"github.com/dmitrymomot/gatekit/schema"
)

// SchemaMap binds schemas to segments for one route. Map keys are unique,
// so a SchemaMap cannot express the duplicate-segment definition error;
// use a Registry directly when registration happens incrementally.
type SchemaMap map[Segment]*schema.Schema

// Option configures the validation middleware.
type Option func(*options)

type options struct {
	responder *Responder
	sources   Sources
	signer    *cookiesign.Signer
}

// WithResponder wires the terminal stage that renders this engine's tagged
// failures. Explicit construction-time wiring replaces registration-order
// conventions: the middleware cannot exist without its responder, so a
// misordered pipeline is unrepresentable.
func WithResponder(rp *Responder) Option {
	return func(o *options) {
		if rp != nil {
			o.responder = rp
		}
	}
}

// WithSources overrides segment data accessors. Unset accessors keep their
// defaults.
func WithSources(src Sources) Option {
	return func(o *options) {
		o.sources = src
	}
}

// WithSigner supplies the cookie signer backing the default cookies and
// signedCookies sources. Ignored when those sources are overridden.
func WithSigner(signer *cookiesign.Signer) Option {
	return func(o *options) {
		o.signer = signer
	}
}

// Middleware returns the per-route validation middleware for an already
// populated registry. Each request is validated segment by segment in the
// fixed order; all failing segments are collected before responding, so
// one round trip reports every broken segment. On success the next handler
// runs with the validated (default-augmented, coerced) views stored in the
// request context. On failure the tagged *RequestError goes to the
// responder and the next handler is never invoked.
func Middleware(reg *Registry, opts ...Option) func(http.Handler) http.Handler {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.responder == nil {
		o.responder = defaultResponder
	}
	src := o.sources.withDefaults(o.signer)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqErr, views := aggregate(r, reg, src)
			if reqErr != nil {
				o.responder.Respond(w, r, reqErr)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSegmentData(r.Context(), views)))
		})
	}
}

// Validate builds the validation middleware from a schema map. Definition
// errors panic: routes are declared at startup and a broken declaration
// should prevent the process from serving at all.
func Validate(m SchemaMap, opts ...Option) func(http.Handler) http.Handler {
	reg := NewRegistry()
	for _, seg := range Segments() {
		if s, ok := m[seg]; ok {
			if err := reg.Register(seg, s); err != nil {
				panic(fmt.Errorf("gatekit: %w", err))
			}
		}
	}
	return Middleware(reg, opts...)
}

// aggregate runs every registered segment's schema against its data view,
// in fixed segment order, and merges the failures. A failing segment never
// short-circuits the remaining ones. The returned views hold the validated
// data of every segment that passed; they are complete only when the
// request error is nil.
func aggregate(r *http.Request, reg *Registry, src Sources) (*RequestError, segmentData) {
	var reqErr *RequestError
	views := make(segmentData)

	for _, seg := range Segments() {
		s, ok := reg.Schema(seg)
		if !ok {
			continue
		}

		data, err := src.forSegment(seg)(r)
		if err != nil {
			if reqErr == nil {
				reqErr = &RequestError{}
			}
			// Extraction failures (a body that is not a JSON object) are
			// segment failures without attributable field keys.
			reqErr.set(seg, &SegmentError{
				Source:  seg.String(),
				Keys:    []string{},
				Message: `"value" must be of type object`,
			})
			continue
		}

		if v := s.Validate(data); v != nil {
			if reqErr == nil {
				reqErr = &RequestError{}
			}
			reqErr.set(seg, &SegmentError{
				Source:  seg.String(),
				Keys:    v.Keys,
				Message: v.Message,
			})
			continue
		}

		views[seg] = data
	}

	return reqErr, views
}
