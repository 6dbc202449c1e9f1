package golang

import (
	"fmt"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/spec"
)

func typeName(d *spec.Decl) string { return gen.Pascal(d.Name) }

func deserializer(d *spec.Decl) string { return "Deserialize" + typeName(d) }

func variantType(u *spec.Decl, v *spec.Variant) string { return typeName(u) + gen.Pascal(v.Name) }

func marker(u *spec.Decl) string { return "is" + typeName(u) }

func fieldName(f *spec.Field) string { return gen.Pascal(f.Name) }

func getter(f *spec.Field) string { return "Get" + fieldName(f) }

func constName(d *spec.Decl, c *spec.Const) string { return typeName(d) + gen.Pascal(c.Name) }

func tableName(d *spec.Decl) string { return gen.Plural(typeName(d)) }

// checkNames rejects modules whose declarations map to the same Go
// identifier, e.g. "user_id" and "UserId".
func (g *generator) checkNames() error {
	owners := make(map[string]string)
	declare := func(ident, owner string) error {
		if prev, ok := owners[ident]; ok {
			return gen.NewGenerationError(g.Name(), g.mod.Name, "",
				fmt.Sprintf("%s and %s both declare Go identifier %s", prev, owner, ident), nil)
		}
		owners[ident] = owner
		return nil
	}
	for _, d := range g.mod.Decls {
		if err := declare(typeName(d), d.Name); err != nil {
			return err
		}
		if d.Instantiable() {
			if err := declare(deserializer(d), d.Name); err != nil {
				return err
			}
		}
		switch d.Kind {
		case spec.DeclUnion:
			for _, v := range d.Variants {
				if err := declare(variantType(d, v), d.Name+"."+v.Name); err != nil {
					return err
				}
			}
		case spec.DeclConst:
			for _, c := range d.Consts {
				if err := declare(constName(d, c), d.Name+"."+c.Name); err != nil {
					return err
				}
			}
			if err := declare(tableName(d), d.Name); err != nil {
				return err
			}
		case spec.DeclStruct, spec.DeclVirtual:
			if err := g.checkMembers(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *generator) checkMembers(d *spec.Decl) error {
	members := make(map[string]string)
	conflict := func(ident, owner string) error {
		if prev, ok := members[ident]; ok {
			return gen.NewGenerationError(g.Name(), g.mod.Name, "",
				fmt.Sprintf("%s: %s conflicts with %s", d.Name, owner, prev), nil)
		}
		members[ident] = owner
		return nil
	}
	if d.Kind == spec.DeclVirtual {
		for _, f := range d.Fields {
			if err := conflict(getter(f), "accessor of field "+f.Name); err != nil {
				return err
			}
		}
		return nil
	}
	members["Serialize"] = "method Serialize"
	for _, f := range d.AllFields() {
		if err := conflict(fieldName(f), "field "+f.Name); err != nil {
			return err
		}
	}
	if d.Base != nil {
		for _, f := range d.Base.AllFields() {
			if err := conflict(getter(f), "accessor of field "+f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// locals returns the identifiers declared inside the generated functions
// of the module. Imported packages named after one of them get an alias.
func (g *generator) locals() map[string]bool {
	names := map[string]bool{"v": true, "m": true, "x": true, "err": true, "out": true, "tag": true, "payload": true}
	for _, d := range g.mod.Decls {
		switch d.Kind {
		case spec.DeclStruct, spec.DeclNewType:
			names[gen.Receiver(typeName(d))] = true
		case spec.DeclUnion:
			for _, v := range d.Variants {
				names[gen.Receiver(variantType(d, v))] = true
			}
		}
	}
	return names
}
