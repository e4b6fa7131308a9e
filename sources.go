package gatekit

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/gatekit/pkg/cookiesign"
)

// ErrInvalidBody is returned by the default body source when the request
// body is not a JSON object.
var ErrInvalidBody = errors.New("request body is not a JSON object")

// SourceFunc extracts one segment's already-decoded data view from a
// request. The engine never parses raw bytes beyond what the source does;
// everything downstream is pure computation over the returned map.
type SourceFunc func(r *http.Request) (map[string]any, error)

// Sources supplies the per-segment data accessors. Zero-value fields fall
// back to the defaults for a net/http host with a chi router; hosts with a
// different router or body codec override the relevant accessor.
type Sources struct {
	Body          SourceFunc
	Query         SourceFunc
	Params        SourceFunc
	Headers       SourceFunc
	Cookies       SourceFunc
	SignedCookies SourceFunc
}

func (s Sources) forSegment(seg Segment) SourceFunc {
	switch seg {
	case Body:
		return s.Body
	case Query:
		return s.Query
	case Params:
		return s.Params
	case Headers:
		return s.Headers
	case Cookies:
		return s.Cookies
	case SignedCookies:
		return s.SignedCookies
	default:
		return nil
	}
}

// withDefaults fills unset accessors. The signer may be nil, in which case
// no cookie verifies and the signedCookies view stays empty.
func (s Sources) withDefaults(signer *cookiesign.Signer) Sources {
	if s.Body == nil {
		s.Body = JSONBodySource()
	}
	if s.Query == nil {
		s.Query = QuerySource()
	}
	if s.Params == nil {
		s.Params = ChiParamsSource()
	}
	if s.Headers == nil {
		s.Headers = HeaderSource()
	}
	if s.Cookies == nil {
		s.Cookies = CookieSource(signer)
	}
	if s.SignedCookies == nil {
		s.SignedCookies = SignedCookieSource(signer)
	}
	return s
}

// JSONBodySource decodes the request body as a JSON object. A missing or
// empty body yields an empty view so required-field rules report the
// absence; anything that is not a JSON object is an extraction failure
// attributed to the body segment.
func JSONBodySource() SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		if r.Body == nil {
			return map[string]any{}, nil
		}

		data := make(map[string]any)
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			if errors.Is(err, io.EOF) {
				return map[string]any{}, nil
			}
			return nil, errors.Join(ErrInvalidBody, err)
		}
		// A literal JSON null decodes into a nil map.
		if data == nil {
			data = map[string]any{}
		}
		return data, nil
	}
}

// QuerySource exposes query parameters, first value per key.
func QuerySource() SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		values := r.URL.Query()
		data := make(map[string]any, len(values))
		for key, vals := range values {
			if len(vals) > 0 {
				data[key] = vals[0]
			}
		}
		return data, nil
	}
}

// ChiParamsSource exposes chi route parameters. Requests routed outside
// chi produce an empty view; use a custom Params source for other routers.
func ChiParamsSource() SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		data := make(map[string]any)
		rctx := chi.RouteContext(r.Context())
		if rctx == nil {
			return data, nil
		}
		for i, key := range rctx.URLParams.Keys {
			// chi records the catch-all remainder under "*".
			if key == "*" {
				continue
			}
			data[key] = rctx.URLParams.Values[i]
		}
		return data, nil
	}
}

// HeaderSource exposes request headers with lowercased names, first value
// per header. Lowercasing keeps header schemas case-insensitive the way
// HTTP field names are.
func HeaderSource() SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		data := make(map[string]any, len(r.Header))
		for name, vals := range r.Header {
			if len(vals) > 0 {
				data[strings.ToLower(name)] = vals[0]
			}
		}
		return data, nil
	}
}

// CookieSource exposes unsigned request cookies. When a signer is
// configured, cookies that verify as signed belong to the signedCookies
// view and are excluded here.
func CookieSource(signer *cookiesign.Signer) SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		data := make(map[string]any)
		for _, c := range r.Cookies() {
			if signer != nil {
				if _, err := signer.Verify(c.Value); err == nil {
					continue
				}
			}
			data[c.Name] = c.Value
		}
		return data, nil
	}
}

// SignedCookieSource exposes cookies whose signature verifies against the
// signer, mapped to their verified plaintext values. Without a signer the
// view is always empty.
func SignedCookieSource(signer *cookiesign.Signer) SourceFunc {
	return func(r *http.Request) (map[string]any, error) {
		data := make(map[string]any)
		if signer == nil {
			return data, nil
		}
		for _, c := range r.Cookies() {
			if value, err := signer.Verify(c.Value); err == nil {
				data[c.Name] = value
			}
		}
		return data, nil
	}
}
