package specgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen"
)

func TestDecodeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &specgen.DecodeError{
			Kind:   specgen.ErrTypeMismatch,
			Decl:   "Node",
			Path:   []string{"children", "0", "value"},
			Detail: "expected integer, got string",
		}
		assert.Equal(t, "specgen: type mismatch decoding Node at children.0.value: expected integer, got string", err.Error())
		assert.Equal(t, "children.0.value", err.PathString())
	})

	t.Run("Error message with kind only", func(t *testing.T) {
		err := specgen.NewDecodeError(specgen.ErrMalformedBytes, "")
		assert.Equal(t, "specgen: malformed bytes", err.Error())
	})

	t.Run("Is matches kind", func(t *testing.T) {
		err := specgen.NewDecodeError(specgen.ErrMalformedNumeric, "x")
		assert.True(t, errors.Is(err, specgen.ErrMalformedNumeric))
		assert.False(t, errors.Is(err, specgen.ErrMalformedBytes))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, errors.Is(wrapped, specgen.ErrMalformedNumeric))
		assert.True(t, specgen.IsDecodeError(wrapped))
	})

	t.Run("UnknownVariant", func(t *testing.T) {
		err := specgen.UnknownVariant("Number", "Int128")
		assert.True(t, specgen.IsUnknownVariant(err))
		assert.Equal(t, `specgen: unknown variant decoding Number: "Int128"`, err.Error())
	})

	t.Run("helpers", func(t *testing.T) {
		assert.False(t, specgen.IsDecodeError(nil))
		assert.False(t, specgen.IsDecodeError(errors.New("other")))
		assert.False(t, specgen.IsTypeMismatch(errors.New("other")))
		assert.True(t, specgen.IsMissingRequiredField(specgen.NewDecodeError(specgen.ErrMissingRequiredField, "")))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, specgen.WrapDecl("A", nil))
		assert.NoError(t, specgen.WrapField("a", nil))
	})

	t.Run("innermost declaration wins", func(t *testing.T) {
		err := specgen.WrapDecl("Inner", specgen.NewDecodeError(specgen.ErrTypeMismatch, ""))
		err = specgen.WrapField("inner", err)
		err = specgen.WrapDecl("Outer", err)

		var de *specgen.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "Inner", de.Decl)
		assert.Equal(t, []string{"inner"}, de.Path)
	})

	t.Run("path is prepended", func(t *testing.T) {
		err := specgen.WrapField("b", specgen.NewDecodeError(specgen.ErrTypeMismatch, ""))
		err = specgen.WrapField("a", err)

		var de *specgen.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, []string{"a", "b"}, de.Path)
	})

	t.Run("foreign errors become type mismatches", func(t *testing.T) {
		err := specgen.WrapField("a", errors.New("boom"))
		assert.True(t, specgen.IsTypeMismatch(err))
		assert.Contains(t, err.Error(), "boom")
	})
}
