package gatekit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/gatekit/pkg/logger"
)

// Fallback handles errors the responder does not recognize as its own.
type Fallback func(w http.ResponseWriter, r *http.Request, err error)

// Responder is the terminal stage for validation failures. It renders
// tagged *RequestError values as a structured 400 response and hands every
// other error to the fallback untouched: the engine never claims errors it
// did not produce. Exactly one responder handles a failed request, so
// rendering happens at most once.
type Responder struct {
	log      *slog.Logger
	fallback Fallback
}

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// WithLogger sets the logger used for rejected requests.
func WithLogger(log *slog.Logger) ResponderOption {
	return func(rp *Responder) {
		if log != nil {
			rp.log = log
		}
	}
}

// WithFallback sets the handler for errors this engine did not produce.
// The default answers with a plain 500.
func WithFallback(f Fallback) ResponderOption {
	return func(rp *Responder) {
		if f != nil {
			rp.fallback = f
		}
	}
}

// NewResponder returns a configured Responder.
func NewResponder(opts ...ResponderOption) *Responder {
	rp := &Responder{
		log:      slog.Default(),
		fallback: defaultFallback,
	}
	for _, opt := range opts {
		opt(rp)
	}
	return rp
}

var defaultResponder = NewResponder()

func defaultFallback(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// errorBody is the wire shape of a rendered validation failure.
type errorBody struct {
	StatusCode int           `json:"statusCode"`
	Error      string        `json:"error"`
	Message    string        `json:"message"`
	Validation *RequestError `json:"validation"`
}

// Respond renders err. Tagged validation failures become a 400 with the
// per-segment validation object; anything else goes to the fallback.
func (rp *Responder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		rp.fallback(w, r, err)
		return
	}

	rp.log.LogAttrs(r.Context(), slog.LevelWarn, "request rejected",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("segments", reqErr.Len()),
		logger.Error(reqErr),
		logger.Component("responder"),
	)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	if encErr := json.NewEncoder(w).Encode(errorBody{
		StatusCode: http.StatusBadRequest,
		Error:      "Bad Request",
		Message:    "Validation failed",
		Validation: reqErr,
	}); encErr != nil {
		rp.log.LogAttrs(r.Context(), slog.LevelError, "failed to render validation response",
			logger.Error(encErr),
			logger.Component("responder"),
		)
	}
}
