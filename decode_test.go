package specgen_test

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen"
)

func TestDecodeInt(t *testing.T) {
	valid := []any{int(7), int8(7), int16(7), int32(7), int64(7), uint8(7), uint16(7), uint32(7), uint64(7), float64(7), float32(7), json.Number("7")}
	for _, v := range valid {
		got, err := specgen.DecodeInt[int8](v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, int8(7), got)
	}

	t.Run("overflow", func(t *testing.T) {
		_, err := specgen.DecodeInt[int8](128)
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
		_, err = specgen.DecodeInt[int16](float64(-40000))
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
		_, err = specgen.DecodeInt[int64](uint64(1 << 63))
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
	})

	t.Run("fraction", func(t *testing.T) {
		_, err := specgen.DecodeInt[int32](1.5)
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
		_, err = specgen.DecodeInt[int32](json.Number("1.5"))
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
	})

	t.Run("mismatch", func(t *testing.T) {
		_, err := specgen.DecodeInt[int64]("1")
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
		_, err = specgen.DecodeInt[int64](nil)
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
	})
}

func TestDecodeScalars(t *testing.T) {
	b, err := specgen.DecodeBool(true)
	require.NoError(t, err)
	assert.True(t, b)
	_, err = specgen.DecodeBool("true")
	assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

	s, err := specgen.DecodeString("")
	require.NoError(t, err)
	assert.Equal(t, "", s)
	_, err = specgen.DecodeString(1)
	assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

	f, err := specgen.DecodeFloat(json.Number("2.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
	f, err = specgen.DecodeFloat(int64(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)
	_, err = specgen.DecodeFloat(false)
	assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

	j, err := specgen.DecodeJSON(map[string]any{"a": []any{1.0}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{1.0}}, j)
}

func TestDecodeNumericStrings(t *testing.T) {
	t.Run("bigint", func(t *testing.T) {
		i, err := specgen.DecodeBigInt("123456789012345678901")
		require.NoError(t, err)
		want, _ := new(big.Int).SetString("123456789012345678901", 10)
		assert.Equal(t, 0, want.Cmp(i))

		_, err = specgen.DecodeBigInt("12a")
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
		_, err = specgen.DecodeBigInt(float64(12))
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
	})

	t.Run("decimal", func(t *testing.T) {
		d, err := specgen.DecodeDecimal("10.5")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10.5").Equal(d))

		_, err = specgen.DecodeDecimal("ten")
		assert.ErrorIs(t, err, specgen.ErrMalformedNumeric)
		_, err = specgen.DecodeDecimal(10.5)
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
	})
}

func TestDecodeBytes(t *testing.T) {
	b, err := specgen.DecodeBytes([]any{0, float64(255), json.Number("16")})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, b)

	b, err = specgen.DecodeBytes([]any{})
	require.NoError(t, err)
	assert.Equal(t, []byte{}, b)

	for _, bad := range [][]any{{256}, {-1}, {"a"}, {1.5}, {nil}} {
		_, err := specgen.DecodeBytes(bad)
		assert.ErrorIs(t, err, specgen.ErrMalformedBytes, "%v", bad)
	}

	_, err = specgen.DecodeBytes("AAE=")
	assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

	var de *specgen.DecodeError
	_, err = specgen.DecodeBytes([]any{1, 2, 300})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"2"}, de.Path)
}

func TestDecodeComposites(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		dec := specgen.DecodeList(specgen.DecodeInt[int64])
		got, err := dec([]any{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, got)

		got, err = dec([]any{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		_, err = dec(nil)
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
		_, err = dec(map[string]any{})
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

		var de *specgen.DecodeError
		_, err = dec([]any{1, "x"})
		require.ErrorAs(t, err, &de)
		assert.Equal(t, []string{"1"}, de.Path)
	})

	t.Run("map", func(t *testing.T) {
		dec := specgen.DecodeMap(specgen.DecodeString)
		got, err := dec(map[string]any{"a": "b"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "b"}, got)

		got, err = dec(map[any]any{"c": "d"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"c": "d"}, got)

		_, err = dec(map[any]any{1: "d"})
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

		var de *specgen.DecodeError
		_, err = dec(map[string]any{"k": 1})
		require.ErrorAs(t, err, &de)
		assert.Equal(t, []string{"k"}, de.Path)
	})

	t.Run("optional", func(t *testing.T) {
		dec := specgen.DecodeOptional(specgen.DecodeInt[int32])
		got, err := dec(nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = dec(0)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int32(0), *got)
	})

	t.Run("nullable", func(t *testing.T) {
		dec := specgen.DecodeNullable(specgen.DecodeBigInt)
		got, err := dec(nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = dec("0")
		require.NoError(t, err)
		assert.Equal(t, "0", got.String())
	})

	t.Run("pointer", func(t *testing.T) {
		dec := specgen.DecodePointer(specgen.DecodeString)
		got, err := dec("x")
		require.NoError(t, err)
		assert.Equal(t, "x", *got)

		_, err = dec(nil)
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
	})
}

func TestFields(t *testing.T) {
	m := map[string]any{"zero": 0, "null": nil, "empty": ""}

	t.Run("required", func(t *testing.T) {
		_, err := specgen.RequiredField(m, "missing", specgen.DecodeInt[int64])
		assert.ErrorIs(t, err, specgen.ErrMissingRequiredField)
		var de *specgen.DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, []string{"missing"}, de.Path)

		_, err = specgen.RequiredField(m, "null", specgen.DecodeInt[int64])
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)

		p, err := specgen.RequiredField(m, "null", specgen.DecodeOptional(specgen.DecodeInt[int64]))
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("present zero is present", func(t *testing.T) {
		p, err := specgen.OptionalField(m, "zero", specgen.DecodeOptional(specgen.DecodeInt[int64]))
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, int64(0), *p)

		s, err := specgen.OptionalField(m, "empty", specgen.DecodeOptional(specgen.DecodeString))
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "", *s)
	})

	t.Run("absent", func(t *testing.T) {
		p, err := specgen.OptionalField(m, "missing", specgen.DecodeOptional(specgen.DecodeInt[int64]))
		require.NoError(t, err)
		assert.Nil(t, p)

		p, err = specgen.OptionalField(m, "null", specgen.DecodeOptional(specgen.DecodeInt[int64]))
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("object", func(t *testing.T) {
		_, err := specgen.DecodeObject([]any{})
		assert.ErrorIs(t, err, specgen.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "expected object, got []interface {}")
		_, err = specgen.DecodeObject(nil)
		assert.Contains(t, err.Error(), "got null")
	})
}
