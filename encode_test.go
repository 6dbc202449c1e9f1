package specgen_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/specgen"
)

type point struct{ X, Y int64 }

func (p point) Serialize() any {
	return map[string]any{"x": p.X, "y": p.Y}
}

type shape interface {
	specgen.Serializer
	isShape()
}

type circle struct{ Payload int64 }

func (c circle) Serialize() any { return map[string]any{"type": "Circle", "payload": c.Payload} }
func (circle) isShape() {}

func TestEncode(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		assert.Equal(t, []any{0, 255}, specgen.EncodeBytes([]byte("\x00\xff")))
		assert.Equal(t, []any{}, specgen.EncodeBytes(nil))
	})

	t.Run("numeric strings", func(t *testing.T) {
		i, _ := new(big.Int).SetString("123456789012345678901", 10)
		assert.Equal(t, "123456789012345678901", specgen.EncodeBigInt(i))
		assert.Nil(t, specgen.EncodeBigInt(nil))
		assert.Equal(t, "10.5", specgen.EncodeDecimal(decimal.RequireFromString("10.5")))
	})

	t.Run("empty collections are never null", func(t *testing.T) {
		assert.Equal(t, []any{}, specgen.EncodeList([]int64(nil), specgen.EncodeScalar[int64]))
		assert.Equal(t, map[string]any{}, specgen.EncodeMap(map[string]string(nil), specgen.EncodeScalar[string]))
	})

	t.Run("list and map", func(t *testing.T) {
		assert.Equal(t, []any{map[string]any{"x": int64(1), "y": int64(2)}},
			specgen.EncodeList([]point{{1, 2}}, point.Serialize))
		assert.Equal(t, map[string]any{"a": "b"},
			specgen.EncodeMap(map[string]string{"a": "b"}, specgen.EncodeScalar[string]))
	})

	t.Run("optional", func(t *testing.T) {
		zero := int64(0)
		assert.Nil(t, specgen.EncodeOptional(nil, specgen.EncodeScalar[int64]))
		assert.Equal(t, int64(0), specgen.EncodeOptional(&zero, specgen.EncodeScalar[int64]))
	})

	t.Run("pointer", func(t *testing.T) {
		assert.Nil(t, specgen.EncodePointer[point](nil))
		assert.Equal(t, map[string]any{"x": int64(3), "y": int64(4)}, specgen.EncodePointer(&point{3, 4}))
	})

	t.Run("value", func(t *testing.T) {
		var s shape
		assert.Nil(t, specgen.EncodeValue(s))
		s = circle{Payload: 2}
		assert.Equal(t, map[string]any{"type": "Circle", "payload": int64(2)}, specgen.EncodeValue(s))
	})
}
