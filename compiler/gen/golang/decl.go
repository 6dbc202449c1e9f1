package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/spec"
)

// comment adds the declaration doc, or the fallback comment when the
// declaration has none.
func comment(f *jen.File, doc, format string, args ...any) {
	if doc != "" {
		f.Comment(doc)
		return
	}
	f.Commentf(format, args...)
}

// genStruct generates a struct, its Serialize method, the accessors of
// the virtual struct it extends and its deserializer.
func (g *generator) genStruct(f *jen.File, d *spec.Decl) {
	name := typeName(d)
	fields := d.AllFields()
	comment(f, d.Doc, "%s is the %s struct of module %s.", name, d.Name, g.mod.Name)
	f.Type().Id(name).StructFunc(func(group *jen.Group) {
		for _, fl := range fields {
			if fl.Doc != "" {
				group.Comment(fl.Doc)
			}
			group.Id(fieldName(fl)).Add(g.memberType(d, fl.Name, fl.EffectiveType()))
		}
	})

	r := gen.Receiver(name)
	recv := jen.Id(r).Id(name)
	if len(fields) == 0 {
		recv = jen.Id(name)
	}
	f.Commentf("Serialize encodes %s as a mapping with one key per field.", name)
	f.Func().Params(recv).Id("Serialize").Params().Id("any").Block(
		jen.Return(jen.Map(jen.String()).Id("any").Values(jen.DictFunc(func(dict jen.Dict) {
			for _, fl := range fields {
				dict[jen.Lit(fl.Name)] = g.memberEncode(d, fl.Name, fl.EffectiveType(), jen.Id(r).Dot(fieldName(fl)))
			}
		}))),
	)

	if base := d.Base; base != nil {
		for _, fl := range base.AllFields() {
			value := jen.Id(r).Dot(fieldName(fl))
			if g.boxed(d, fl.Name, fl.EffectiveType()) {
				value = jen.Op("*").Add(value)
			}
			f.Commentf("%s returns the %s field of %s.", getter(fl), fl.Name, base.Name)
			f.Func().Params(jen.Id(r).Id(name)).Id(getter(fl)).Params().Add(g.goType(fl.EffectiveType())).Block(
				jen.Return(value),
			)
		}
		f.Var().Id("_").Add(g.qual(base, typeName(base))).Op("=").Id(name).Values()
	}

	f.Commentf("%s decodes a %s from its structured value.", deserializer(d), name)
	f.Func().Id(deserializer(d)).Params(jen.Id("v").Id("any")).Params(jen.Id(name), jen.Error()).BlockFunc(func(group *jen.Group) {
		fail := jen.Return(jen.Id(name).Values(), g.rt("WrapDecl").Call(jen.Lit(d.Name), jen.Err()))
		if len(fields) == 0 {
			group.If(
				jen.List(jen.Id("_"), jen.Err()).Op(":=").Add(g.rt("DecodeObject").Call(jen.Id("v"))),
				jen.Err().Op("!=").Nil(),
			).Block(fail)
			group.Return(jen.Id(name).Values(), jen.Nil())
			return
		}
		group.List(jen.Id("m"), jen.Err()).Op(":=").Add(g.rt("DecodeObject").Call(jen.Id("v")))
		group.If(jen.Err().Op("!=").Nil()).Block(fail)
		group.Var().Id("out").Id(name)
		for _, fl := range fields {
			read := "OptionalField"
			if fl.Required {
				read = "RequiredField"
			}
			group.If(
				jen.List(jen.Id("out").Dot(fieldName(fl)), jen.Err()).Op("=").Add(
					g.rt(read).Call(jen.Id("m"), jen.Lit(fl.Name), g.memberDecoder(d, fl.Name, fl.EffectiveType())),
				),
				jen.Err().Op("!=").Nil(),
			).Block(fail)
		}
		group.Return(jen.Id("out"), jen.Nil())
	})
}

// genVirtual generates the accessor interface of a virtual struct.
func (g *generator) genVirtual(f *jen.File, d *spec.Decl) {
	name := typeName(d)
	comment(f, d.Doc, "%s is implemented by the structs extending %s.", name, d.Name)
	f.Type().Id(name).InterfaceFunc(func(group *jen.Group) {
		for _, fl := range d.Fields {
			group.Id(getter(fl)).Params().Add(g.goType(fl.EffectiveType()))
		}
	})
}

// genUnion generates the sealed interface of a tagged union, its variant
// structs and its deserializer.
func (g *generator) genUnion(f *jen.File, d *spec.Decl) {
	name := typeName(d)
	tag, payload := d.TagKey(), d.PayloadKey()
	comment(f, d.Doc, "%s is the %s enum of module %s. It is implemented by the %s variant types.", name, d.Name, g.mod.Name, name)
	f.Type().Id(name).Interface(
		g.rt("Serializer"),
		jen.Id(marker(d)).Params(),
	)

	for _, v := range d.Variants {
		vt := variantType(d, v)
		comment(f, v.Doc, "%s is the %s variant of %s.", vt, v.Name, name)
		if v.Void() {
			f.Type().Id(vt).Struct()
		} else {
			f.Type().Id(vt).Struct(jen.Id("Payload").Add(g.goType(v.Payload)))
		}
		f.Func().Params(jen.Id(vt)).Id(marker(d)).Params().Block()

		f.Commentf("Serialize encodes %s with its discriminator.", vt)
		if v.Void() {
			f.Func().Params(jen.Id(vt)).Id("Serialize").Params().Id("any").Block(
				jen.Return(jen.Map(jen.String()).Id("any").Values(jen.Dict{
					jen.Lit(tag): jen.Lit(v.Name),
				})),
			)
			continue
		}
		r := gen.Receiver(vt)
		f.Func().Params(jen.Id(r).Id(vt)).Id("Serialize").Params().Id("any").Block(
			jen.Return(jen.Map(jen.String()).Id("any").Values(jen.Dict{
				jen.Lit(tag):     jen.Lit(v.Name),
				jen.Lit(payload): g.encode(v.Payload, jen.Id(r).Dot("Payload")),
			})),
		)
	}

	f.Commentf("%s decodes a %s from its structured value.", deserializer(d), name)
	f.Func().Id(deserializer(d)).Params(jen.Id("v").Id("any")).Params(jen.Id(name), jen.Error()).Block(
		jen.List(jen.Id("m"), jen.Err()).Op(":=").Add(g.rt("DecodeObject").Call(jen.Id("v"))),
		jen.If(jen.Err().Op("!=").Nil()).Block(g.unionFail(d)),
		jen.List(jen.Id("tag"), jen.Err()).Op(":=").Add(g.rt("RequiredField").Call(jen.Id("m"), jen.Lit(tag), g.rt("DecodeString"))),
		jen.If(jen.Err().Op("!=").Nil()).Block(g.unionFail(d)),
		jen.Switch(jen.Id("tag")).BlockFunc(func(group *jen.Group) {
			for _, v := range d.Variants {
				vt := variantType(d, v)
				if v.Void() {
					group.Case(jen.Lit(v.Name)).Block(jen.Return(jen.Id(vt).Values(), jen.Nil()))
					continue
				}
				read := "RequiredField"
				if v.Payload.Kind == spec.KindOptional {
					read = "OptionalField"
				}
				group.Case(jen.Lit(v.Name)).Block(
					jen.List(jen.Id("payload"), jen.Err()).Op(":=").Add(
						g.rt(read).Call(jen.Id("m"), jen.Lit(payload), g.decoder(v.Payload)),
					),
					jen.If(jen.Err().Op("!=").Nil()).Block(g.unionFail(d)),
					jen.Return(jen.Id(vt).Values(jen.Dict{jen.Id("Payload"): jen.Id("payload")}), jen.Nil()),
				)
			}
			group.Default().Block(
				jen.Return(jen.Nil(), g.rt("UnknownVariant").Call(jen.Lit(d.Name), jen.Id("tag"))),
			)
		}),
	)
}

func (g *generator) unionFail(d *spec.Decl) jen.Code {
	return jen.Return(jen.Nil(), g.rt("WrapDecl").Call(jen.Lit(d.Name), jen.Err()))
}

// wrapper reports whether a newtype is generated as a struct holding Value.
// Go allows no methods on named pointer and interface types.
func (g *generator) wrapper(d *spec.Decl) bool {
	t := d.Wrapped
	if g.boxed(d, "", t) {
		return true
	}
	switch t.Kind {
	case spec.KindBigInt, spec.KindJSON, spec.KindOptional:
		return true
	case spec.KindRef:
		return nilable(t)
	default:
		return false
	}
}

// genNewType generates a newtype, its Serialize method and its deserializer.
func (g *generator) genNewType(f *jen.File, d *spec.Decl) {
	name := typeName(d)
	t := d.Wrapped
	r := gen.Receiver(name)
	wrapper := g.wrapper(d)
	comment(f, d.Doc, "%s is the %s newtype of module %s.", name, d.Name, g.mod.Name)
	if wrapper {
		f.Type().Id(name).Struct(jen.Id("Value").Add(g.memberType(d, "", t)))
	} else {
		f.Type().Id(name).Add(g.goType(t))
	}

	var value, wrap jen.Code
	if wrapper {
		value = g.memberEncode(d, "", t, jen.Id(r).Dot("Value"))
		wrap = jen.Id(name).Values(jen.Dict{jen.Id("Value"): jen.Id("x")})
	} else {
		value = g.encode(t, jen.Add(g.goType(t)).Call(jen.Id(r)))
		wrap = jen.Id(name).Call(jen.Id("x"))
	}
	f.Commentf("Serialize encodes %s as its wrapped value.", name)
	f.Func().Params(jen.Id(r).Id(name)).Id("Serialize").Params().Id("any").Block(
		jen.Return(value),
	)

	f.Commentf("%s decodes a %s from its structured value.", deserializer(d), name)
	f.Func().Id(deserializer(d)).Params(jen.Id("v").Id("any")).Params(jen.Id(name), jen.Error()).Block(
		jen.List(jen.Id("x"), jen.Err()).Op(":=").Add(g.memberDecoder(d, "", t)).Call(jen.Id("v")),
		jen.Return(wrap, g.rt("WrapDecl").Call(jen.Lit(d.Name), jen.Err())),
	)
}

// genConst generates the typed constants of a const group and the table
// of its values keyed by name.
func (g *generator) genConst(f *jen.File, d *spec.Decl) {
	name := typeName(d)
	comment(f, d.Doc, "%s is the %s const group of module %s.", name, d.Name, g.mod.Name)
	f.Type().Id(name).Add(g.goType(d.ConstType))
	if len(d.Consts) == 0 {
		return
	}
	f.Const().DefsFunc(func(group *jen.Group) {
		for _, c := range d.Consts {
			if c.Doc != "" {
				group.Comment(c.Doc)
			}
			group.Id(constName(d, c)).Id(name).Op("=").Add(constValue(c))
		}
	})
	f.Commentf("%s holds the values of %s keyed by name.", tableName(d), name)
	f.Var().Id(tableName(d)).Op("=").Map(jen.String()).Id(name).Values(jen.DictFunc(func(dict jen.Dict) {
		for _, c := range d.Consts {
			dict[jen.Lit(c.Name)] = jen.Id(constName(d, c))
		}
	}))
}

func constValue(c *spec.Const) jen.Code {
	switch v := c.Value.(type) {
	case int64:
		return jen.Lit(int(v))
	case int:
		return jen.Lit(v)
	default:
		return jen.Lit(v)
	}
}
