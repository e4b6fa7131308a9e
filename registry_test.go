package gatekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit"
	"github.com/dmitrymomot/gatekit/schema"
)

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers one schema per segment", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		require.True(t, reg.Empty())

		s := schema.MustNew(schema.String("name"))
		require.NoError(t, reg.Register(gatekit.Body, s))

		got, ok := reg.Schema(gatekit.Body)
		require.True(t, ok)
		assert.Same(t, s, got)
		assert.False(t, reg.Empty())
	})

	t.Run("rejects a second schema for the same segment", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		s := schema.MustNew(schema.String("name"))
		require.NoError(t, reg.Register(gatekit.Query, s))
		assert.ErrorIs(t, reg.Register(gatekit.Query, s), gatekit.ErrSegmentRegistered)
	})

	t.Run("rejects nil schema", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		assert.ErrorIs(t, reg.Register(gatekit.Body, nil), gatekit.ErrNilSchema)
	})

	t.Run("rejects unknown segment", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		s := schema.MustNew(schema.String("name"))
		assert.ErrorIs(t, reg.Register(gatekit.Segment(42), s), gatekit.ErrUnknownSegment)
	})

	t.Run("lookup misses for unregistered segment", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		_, ok := reg.Schema(gatekit.Headers)
		assert.False(t, ok)
	})
}

func TestRegistryMustRegister(t *testing.T) {
	t.Parallel()

	t.Run("panics on duplicate registration", func(t *testing.T) {
		t.Parallel()
		reg := gatekit.NewRegistry()
		s := schema.MustNew(schema.String("name"))
		reg.MustRegister(gatekit.Body, s)
		assert.Panics(t, func() { reg.MustRegister(gatekit.Body, s) })
	})
}
