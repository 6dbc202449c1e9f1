package specgen

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Serializer is implemented by every generated struct, union variant and
// newtype.
type Serializer interface {
	Serialize() any
}

// EncodeScalar encodes a scalar as itself.
func EncodeScalar[T any](v T) any { return v }

// EncodeValue encodes a serializer. A nil interface encodes to null.
func EncodeValue[T Serializer](v T) any {
	if any(v) == nil {
		return nil
	}
	return v.Serialize()
}

// EncodePointer encodes a value held by pointer for recursion.
func EncodePointer[T Serializer](p *T) any {
	if p == nil {
		return nil
	}
	return (*p).Serialize()
}

// EncodeOptional encodes an optional value held by pointer. Nil encodes
// to null.
func EncodeOptional[T any](p *T, enc func(T) any) any {
	if p == nil {
		return nil
	}
	return enc(*p)
}

// EncodeList encodes a slice. A nil slice encodes to an empty sequence.
func EncodeList[T any](s []T, enc func(T) any) any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = enc(v)
	}
	return out
}

// EncodeMap encodes a string keyed map. A nil map encodes to an empty mapping.
func EncodeMap[T any](m map[string]T, enc func(T) any) any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = enc(v)
	}
	return out
}

// EncodeBytes encodes a byte slice as a sequence of byte values.
func EncodeBytes(b []byte) any {
	out := make([]any, len(b))
	for i, c := range b {
		out[i] = int(c)
	}
	return out
}

// EncodeBigInt encodes an integer as its decimal string. Nil encodes to null.
func EncodeBigInt(i *big.Int) any {
	if i == nil {
		return nil
	}
	return i.String()
}

// EncodeDecimal encodes a decimal as its string form.
func EncodeDecimal(d decimal.Decimal) any {
	return d.String()
}
