package gatekit

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestErrorMarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("renders segments in fixed order regardless of insertion order", func(t *testing.T) {
		t.Parallel()
		reqErr := &RequestError{}
		reqErr.set(Query, &SegmentError{Source: "query", Keys: []string{"token"}, Message: `"token" is required`})
		reqErr.set(Body, &SegmentError{Source: "body", Keys: []string{"age"}, Message: `"age" must be greater than or equal to 18`})

		raw, err := json.Marshal(reqErr)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"body": {"source":"body","keys":["age"],"message":"\"age\" must be greater than or equal to 18"},
			"query": {"source":"query","keys":["token"],"message":"\"token\" is required"}
		}`, string(raw))

		// Fixed segment order: body strictly before query in the raw bytes.
		assert.Less(t, bytes.Index(raw, []byte(`"body"`)), bytes.Index(raw, []byte(`"query"`)))
	})

	t.Run("renders empty keys as an empty array", func(t *testing.T) {
		t.Parallel()
		reqErr := &RequestError{}
		reqErr.set(Body, &SegmentError{Source: "body", Message: `"value" must be of type object`})

		raw, err := json.Marshal(reqErr)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"keys":[]`)
	})
}

func TestRequestErrorAccessors(t *testing.T) {
	t.Parallel()

	reqErr := &RequestError{}
	reqErr.set(Cookies, &SegmentError{Source: "cookies", Keys: []string{"name"}, Message: `"name" length must be at least 2 characters long`})
	reqErr.set(Body, &SegmentError{Source: "body", Keys: []string{"email"}, Message: `"email" is required`})

	t.Run("reports failing segments in fixed order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []Segment{Body, Cookies}, reqErr.Segments())
		assert.Equal(t, 2, reqErr.Len())
	})

	t.Run("exposes per-segment failures", func(t *testing.T) {
		t.Parallel()
		se, ok := reqErr.Segment(Cookies)
		require.True(t, ok)
		assert.Equal(t, []string{"name"}, se.Keys)

		_, ok = reqErr.Segment(Headers)
		assert.False(t, ok)
	})

	t.Run("error message names every failing segment", func(t *testing.T) {
		t.Parallel()
		msg := reqErr.Error()
		assert.Contains(t, msg, "body:")
		assert.Contains(t, msg, "cookies:")
	})
}
