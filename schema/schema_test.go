package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/schema"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds a schema from field declarations", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(
			schema.String("name").Min(2).Max(30).Required(),
			schema.Number("age").Min(18),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("rejects empty field name", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(schema.String(""))
		assert.ErrorIs(t, err, schema.ErrEmptyFieldName)
	})

	t.Run("rejects duplicate field names", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(
			schema.String("email"),
			schema.Number("email"),
		)
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("rejects reference to unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(
			schema.String("repeat_password").Ref("password"),
		)
		assert.ErrorIs(t, err, schema.ErrUnknownReference)
	})

	t.Run("rejects self reference", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(
			schema.String("password").Ref("password"),
		)
		assert.ErrorIs(t, err, schema.ErrSelfReference)
	})

	t.Run("rejects pattern that does not compile", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(
			schema.String("code").Pattern(`[unclosed`),
		)
		assert.ErrorIs(t, err, schema.ErrInvalidPattern)
	})

	t.Run("accepts reference to a later field", func(t *testing.T) {
		t.Parallel()
		_, err := schema.New(
			schema.String("repeat_password").Ref("password"),
			schema.String("password"),
		)
		require.NoError(t, err)
	})

	t.Run("ignores nil builders", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(nil, schema.String("name"))
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("returns schema on valid definition", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			schema.MustNew(schema.String("name"))
		})
	})

	t.Run("panics on definition error", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			schema.MustNew(schema.String("a").Ref("missing"))
		})
	})
}

func TestAllowUnknown(t *testing.T) {
	t.Parallel()

	t.Run("returns a relaxed copy and keeps the original strict", func(t *testing.T) {
		t.Parallel()
		strict := schema.MustNew(schema.String("name"))
		relaxed := strict.AllowUnknown()

		data := map[string]any{"name": "Jo", "extra": "x"}
		assert.Nil(t, relaxed.Validate(map[string]any{"name": "Jo", "extra": "x"}))

		v := strict.Validate(data)
		require.NotNil(t, v)
		assert.Equal(t, []string{"extra"}, v.Keys)
	})
}
