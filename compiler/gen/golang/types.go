package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/specgen/compiler/encoding"
	"github.com/syssam/specgen/spec"
)

// goType returns the Go type of t.
func (g *generator) goType(t *spec.Type) jen.Code {
	switch t.Kind {
	case spec.KindBool:
		return jen.Bool()
	case spec.KindInt:
		switch t.Width {
		case 8:
			return jen.Int8()
		case 16:
			return jen.Int16()
		case 32:
			return jen.Int32()
		default:
			return jen.Int64()
		}
	case spec.KindFloat:
		return jen.Float64()
	case spec.KindString:
		return jen.String()
	case spec.KindBigInt:
		return jen.Op("*").Qual(bigPkg, "Int")
	case spec.KindDecimal:
		return jen.Qual(decimalPkg, "Decimal")
	case spec.KindBytes:
		return jen.Index().Byte()
	case spec.KindJSON:
		return jen.Id("any")
	case spec.KindList:
		return jen.Index().Add(g.goType(t.Elem))
	case spec.KindMap:
		return jen.Map(jen.String()).Add(g.goType(t.Elem))
	case spec.KindOptional:
		if nilable(t.Elem) {
			return g.goType(t.Elem)
		}
		return jen.Op("*").Add(g.goType(t.Elem))
	case spec.KindRef:
		d := t.Target()
		return g.qual(d, typeName(d))
	default:
		return jen.Id("any")
	}
}

// nilable reports whether the Go type of t has nil as a value, in which
// case optionals of t do not need a pointer.
func nilable(t *spec.Type) bool {
	switch t.Kind {
	case spec.KindBigInt, spec.KindJSON:
		return true
	case spec.KindRef:
		return encoding.For(t).Kind == encoding.Tagged
	default:
		return false
	}
}

// boxable reports whether t is a reference whose Go type gets a pointer
// when it takes part in an inline reference cycle. Unions are interfaces
// and need none.
func boxable(t *spec.Type) bool {
	if t == nil || t.Kind != spec.KindRef {
		return false
	}
	k := encoding.For(t).Kind
	return k == encoding.Record || k == encoding.Transparent
}

// memberType returns the Go type of a struct field or newtype value.
// References of inline cycles are held by pointer.
func (g *generator) memberType(d *spec.Decl, name string, t *spec.Type) jen.Code {
	if g.boxed(d, name, t) {
		return jen.Op("*").Add(g.goType(t))
	}
	return g.goType(t)
}

func (g *generator) boxed(d *spec.Decl, name string, t *spec.Type) bool {
	return boxable(t) && g.mod.Indirect(d, name)
}

// memberDecoder returns the decoder of a struct field or newtype value.
func (g *generator) memberDecoder(d *spec.Decl, name string, t *spec.Type) jen.Code {
	if g.boxed(d, name, t) {
		return g.rt("DecodePointer").Call(g.decoder(t))
	}
	return g.decoder(t)
}

// memberEncode returns the expression encoding the member value x.
func (g *generator) memberEncode(d *spec.Decl, name string, t *spec.Type, x jen.Code) jen.Code {
	if g.boxed(d, name, t) {
		return g.rt("EncodePointer").Call(x)
	}
	return g.encode(t, x)
}

// decoder returns a function value of type func(any) (T, error) decoding
// values of t.
func (g *generator) decoder(t *spec.Type) jen.Code {
	switch t.Kind {
	case spec.KindBool:
		return g.rt("DecodeBool")
	case spec.KindInt:
		return g.rt("DecodeInt").Types(g.goType(t))
	case spec.KindFloat:
		return g.rt("DecodeFloat")
	case spec.KindString:
		return g.rt("DecodeString")
	case spec.KindBigInt:
		return g.rt("DecodeBigInt")
	case spec.KindDecimal:
		return g.rt("DecodeDecimal")
	case spec.KindBytes:
		return g.rt("DecodeBytes")
	case spec.KindJSON:
		return g.rt("DecodeJSON")
	case spec.KindList:
		return g.rt("DecodeList").Call(g.decoder(t.Elem))
	case spec.KindMap:
		return g.rt("DecodeMap").Call(g.decoder(t.Elem))
	case spec.KindOptional:
		if nilable(t.Elem) {
			return g.rt("DecodeNullable").Call(g.decoder(t.Elem))
		}
		return g.rt("DecodeOptional").Call(g.decoder(t.Elem))
	default:
		d := t.Target()
		return g.qual(d, deserializer(d))
	}
}

// encode returns the expression encoding the value x of type t.
func (g *generator) encode(t *spec.Type, x jen.Code) jen.Code {
	switch t.Kind {
	case spec.KindBool, spec.KindInt, spec.KindFloat, spec.KindString, spec.KindJSON:
		return x
	case spec.KindBigInt:
		return g.rt("EncodeBigInt").Call(x)
	case spec.KindDecimal:
		return g.rt("EncodeDecimal").Call(x)
	case spec.KindBytes:
		return g.rt("EncodeBytes").Call(x)
	case spec.KindList:
		return g.rt("EncodeList").Call(x, g.encoder(t.Elem))
	case spec.KindMap:
		return g.rt("EncodeMap").Call(x, g.encoder(t.Elem))
	case spec.KindOptional:
		if nilable(t.Elem) {
			return g.encode(t.Elem, x)
		}
		return g.rt("EncodeOptional").Call(x, g.encoder(t.Elem))
	default:
		if encoding.For(t).Kind == encoding.Tagged {
			return g.rt("EncodeValue").Call(x)
		}
		return jen.Add(x).Dot("Serialize").Call()
	}
}

// encoder returns a function value of type func(T) any encoding values of t.
func (g *generator) encoder(t *spec.Type) jen.Code {
	switch t.Kind {
	case spec.KindBool, spec.KindInt, spec.KindFloat, spec.KindString, spec.KindJSON:
		return g.rt("EncodeScalar").Types(g.goType(t))
	case spec.KindBigInt:
		return g.rt("EncodeBigInt")
	case spec.KindDecimal:
		return g.rt("EncodeDecimal")
	case spec.KindBytes:
		return g.rt("EncodeBytes")
	case spec.KindList, spec.KindMap, spec.KindOptional:
		return jen.Func().Params(jen.Id("x").Add(g.goType(t))).Id("any").Block(
			jen.Return(g.encode(t, jen.Id("x"))),
		)
	default:
		d := t.Target()
		if d.Kind == spec.DeclUnion {
			return g.rt("EncodeValue").Types(g.qual(d, typeName(d)))
		}
		return g.qual(d, typeName(d)).Dot("Serialize")
	}
}
