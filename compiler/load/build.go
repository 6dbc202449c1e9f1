package load

import (
	"errors"
	"fmt"

	"github.com/syssam/specgen/spec"
)

// build converts the models of f into declarations of m.
func build(m *spec.Module, f *File) error {
	var errs []error
	for _, md := range f.Models {
		decls, err := modelDecls(md)
		if err != nil {
			errs = append(errs, spec.NewError(spec.ErrInvalidDeclaration, m.Name, md.Name, err.Error()))
			continue
		}
		m.Add(decls...)
	}
	return errors.Join(errs...)
}

// modelDecls returns the declaration of md, followed by the synthetic payload
// structs of its inline variant fields.
func modelDecls(md *ModelDef) ([]*spec.Decl, error) {
	var (
		d     *spec.Decl
		extra []*spec.Decl
	)
	switch t := md.Type; t.Name {
	case "struct", "virtual":
		fields, err := loadFields(t.Fields)
		if err != nil {
			return nil, err
		}
		if t.Name == "struct" {
			d = spec.NewStruct(md.Name, fields...)
			d.Extends = t.Extend
		} else {
			d = spec.NewVirtual(md.Name, fields...)
		}
	case "enum":
		d = spec.NewUnion(md.Name).WithKeys(t.TagKey, t.PayloadKey)
		for _, vd := range t.Variants {
			v := &spec.Variant{Name: vd.Name, Doc: vd.Desc}
			switch {
			case vd.PayloadType != nil && vd.PayloadFields != nil:
				return nil, fmt.Errorf("variant %s: payload_type and payload_fields are exclusive", vd.Name)
			case vd.PayloadType != nil:
				pt, err := vd.PayloadType.Type()
				if err != nil {
					return nil, fmt.Errorf("variant %s: %w", vd.Name, err)
				}
				v.Payload = pt
			case vd.PayloadFields != nil:
				fields, err := loadFields(vd.PayloadFields)
				if err != nil {
					return nil, fmt.Errorf("variant %s: %w", vd.Name, err)
				}
				name := PayloadName(md.Name, vd.Name)
				extra = append(extra, spec.NewStruct(name, fields...))
				v.Payload = spec.Reference(name)
			}
			d.Variants = append(d.Variants, v)
		}
	case "new_type":
		if t.InnerType == nil {
			return nil, errors.New("new_type requires inner_type")
		}
		inner, err := t.InnerType.Type()
		if err != nil {
			return nil, err
		}
		d = spec.NewNewType(md.Name, inner)
	case "const":
		ct, err := spec.ParseType(t.ValueType)
		if err != nil {
			return nil, fmt.Errorf("value_type: %w", err)
		}
		d = spec.NewConstGroup(md.Name, ct)
		for _, cv := range t.Values {
			d.Consts = append(d.Consts, &spec.Const{Name: cv.Name, Value: cv.Value.Value, Doc: cv.Desc})
		}
	case "":
		return nil, errors.New("missing model type")
	default:
		return nil, fmt.Errorf("unknown model type %q", t.Name)
	}
	d.Doc = md.Desc
	d.Attributes = md.Attributes
	return append([]*spec.Decl{d}, extra...), nil
}

// PayloadName returns the name of the struct generated for the inline
// payload fields of an enum variant.
func PayloadName(enum, variant string) string {
	return enum + variant + "Payload"
}

func loadFields(defs []*FieldDef) ([]*spec.Field, error) {
	out := make([]*spec.Field, 0, len(defs))
	for _, fd := range defs {
		if fd.Type == nil {
			return nil, fmt.Errorf("field %s: missing type", fd.Name)
		}
		t, err := fd.Type.Type()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		out = append(out, &spec.Field{
			Name:       fd.Name,
			Type:       t,
			Required:   fd.Required,
			Doc:        fd.Desc,
			Attributes: fd.Attributes,
		})
	}
	return out, nil
}

// Type converts the type definition to an IR type.
func (t *TypeDef) Type() (*spec.Type, error) {
	if t.Expr != "" {
		return spec.ParseType(t.Expr)
	}
	switch t.Name {
	case "list", "optional":
		if t.ItemType == nil {
			return nil, fmt.Errorf("%s requires item_type", t.Name)
		}
		elem, err := t.ItemType.Type()
		if err != nil {
			return nil, err
		}
		if t.Name == "list" {
			return spec.List(elem), nil
		}
		return spec.Optional(elem), nil
	case "map":
		if t.ValueType == nil {
			return nil, errors.New("map requires value_type")
		}
		elem, err := t.ValueType.Type()
		if err != nil {
			return nil, err
		}
		return spec.Map(elem), nil
	case "ref":
		if t.Target == "" {
			return nil, errors.New("ref requires target")
		}
		if t.Namespace != "" {
			return spec.ImportRef(t.Namespace, t.Target), nil
		}
		return spec.Reference(t.Target), nil
	case "":
		return nil, errors.New("missing type name")
	default:
		return spec.ParseType(t.Name)
	}
}
