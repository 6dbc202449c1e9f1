package specgen

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Decoder decodes a structured value into T.
type Decoder[T any] func(any) (T, error)

// Integer is the set of integer types of generated code.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// DecodeObject asserts that v is a string keyed mapping.
func DecodeObject(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, e := range m {
			s, ok := k.(string)
			if !ok {
				return nil, mismatch("string key", k)
			}
			out[s] = e
		}
		return out, nil
	default:
		return nil, mismatch("object", v)
	}
}

// RequiredField decodes the value stored under key. A missing key fails
// with ErrMissingRequiredField; a null value is passed to dec.
func RequiredField[T any](m map[string]any, key string, dec Decoder[T]) (T, error) {
	v, ok := m[key]
	if !ok {
		var zero T
		return zero, &DecodeError{Kind: ErrMissingRequiredField, Path: []string{key}}
	}
	x, err := dec(v)
	return x, WrapField(key, err)
}

// OptionalField decodes the value stored under key, or returns the zero
// value of T if the key is missing.
func OptionalField[T any](m map[string]any, key string, dec Decoder[T]) (T, error) {
	v, ok := m[key]
	if !ok {
		var zero T
		return zero, nil
	}
	x, err := dec(v)
	return x, WrapField(key, err)
}

// DecodeBool decodes a bool.
func DecodeBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch("bool", v)
	}
	return b, nil
}

// DecodeInt decodes an integer of type T. Any numeric kind is accepted as
// long as it holds an integral value that fits T.
func DecodeInt[T Integer](v any) (T, error) {
	i, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	x := T(i)
	if int64(x) != i {
		return 0, NewDecodeError(ErrMalformedNumeric, fmt.Sprintf("%d overflows %T", i, x))
	}
	return x, nil
}

// DecodeFloat decodes a float64 from any numeric kind.
func DecodeFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, NewDecodeError(ErrMalformedNumeric, err.Error())
		}
		return f, nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), nil
	}
	if u, ok := v.(uint64); ok {
		return float64(u), nil
	}
	return 0, mismatch("number", v)
}

// DecodeString decodes a string.
func DecodeString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch("string", v)
	}
	return s, nil
}

// DecodeBigInt decodes an arbitrary precision integer from its decimal string.
func DecodeBigInt(v any) (*big.Int, error) {
	s, ok := v.(string)
	if !ok {
		return nil, mismatch("integer string", v)
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, NewDecodeError(ErrMalformedNumeric, strconv.Quote(s))
	}
	return i, nil
}

// DecodeDecimal decodes a decimal from its string form.
func DecodeDecimal(v any) (decimal.Decimal, error) {
	s, ok := v.(string)
	if !ok {
		return decimal.Decimal{}, mismatch("decimal string", v)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, NewDecodeError(ErrMalformedNumeric, strconv.Quote(s))
	}
	return d, nil
}

// DecodeBytes decodes a sequence of byte values.
func DecodeBytes(v any) ([]byte, error) {
	switch s := v.(type) {
	case []byte:
		return s, nil
	case []any:
		b := make([]byte, len(s))
		for i, e := range s {
			n, err := toInt64(e)
			if err != nil || n < 0 || n > math.MaxUint8 {
				return nil, &DecodeError{
					Kind:   ErrMalformedBytes,
					Path:   []string{strconv.Itoa(i)},
					Detail: fmt.Sprintf("%v is not a byte value", e),
				}
			}
			b[i] = byte(n)
		}
		return b, nil
	default:
		return nil, mismatch("byte sequence", v)
	}
}

// DecodeJSON passes the structured value through untyped.
func DecodeJSON(v any) (any, error) {
	return v, nil
}

// DecodeList returns a decoder of sequences of elem.
// An empty sequence decodes to an empty, non-nil slice.
func DecodeList[T any](elem Decoder[T]) Decoder[[]T] {
	return func(v any) ([]T, error) {
		s, ok := v.([]any)
		if !ok {
			return nil, mismatch("sequence", v)
		}
		out := make([]T, len(s))
		for i, e := range s {
			x, err := elem(e)
			if err != nil {
				return nil, WrapField(strconv.Itoa(i), err)
			}
			out[i] = x
		}
		return out, nil
	}
}

// DecodeMap returns a decoder of string keyed mappings of elem.
func DecodeMap[T any](elem Decoder[T]) Decoder[map[string]T] {
	return func(v any) (map[string]T, error) {
		m, err := DecodeObject(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]T, len(m))
		for k, e := range m {
			x, err := elem(e)
			if err != nil {
				return nil, WrapField(k, err)
			}
			out[k] = x
		}
		return out, nil
	}
}

// DecodeOptional returns a decoder of optional values held by pointer.
// Null decodes to nil.
func DecodeOptional[T any](elem Decoder[T]) Decoder[*T] {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		x, err := elem(v)
		if err != nil {
			return nil, err
		}
		return &x, nil
	}
}

// DecodeNullable returns a decoder of optional values whose Go type is
// already nilable. Null decodes to the zero value of T.
func DecodeNullable[T any](elem Decoder[T]) Decoder[T] {
	return func(v any) (T, error) {
		if v == nil {
			var zero T
			return zero, nil
		}
		return elem(v)
	}
}

// DecodePointer returns a decoder of required values held by pointer
// for recursion. Null is a type mismatch.
func DecodePointer[T any](elem Decoder[T]) Decoder[*T] {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, mismatch("value", v)
		}
		x, err := elem(v)
		if err != nil {
			return nil, err
		}
		return &x, nil
	}
}

func toInt64(v any) (int64, error) {
	if i, ok := asInt64(v); ok {
		return i, nil
	}
	switch n := v.(type) {
	case uint64:
		if n > math.MaxInt64 {
			return 0, NewDecodeError(ErrMalformedNumeric, fmt.Sprintf("%d overflows int64", n))
		}
		return int64(n), nil
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, NewDecodeError(ErrMalformedNumeric, fmt.Sprintf("%q is not an integer", n.String()))
		}
		return i, nil
	default:
		return 0, mismatch("integer", v)
	}
}

// asInt64 converts integer kinds that always fit an int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, NewDecodeError(ErrMalformedNumeric, fmt.Sprintf("%v is not an integer", f))
	}
	return int64(f), nil
}
