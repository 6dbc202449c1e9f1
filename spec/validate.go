package spec

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks the shape invariants of the module declarations.
// References are not checked; binding them is the resolver's job.
// All violations are reported, joined in declaration order.
func (m *Module) Validate() error {
	var (
		errs  []error
		names = make(map[string]bool, len(m.Decls))
	)
	for _, d := range m.Decls {
		if !isIdent(d.Name) {
			errs = append(errs, m.errorf(ErrInvalidDeclaration, d, "", "invalid declaration name %q", d.Name))
			continue
		}
		if names[d.Name] {
			errs = append(errs, &Error{Kind: ErrDuplicateDeclaration, Module: m.Name, Name: d.Name})
			continue
		}
		names[d.Name] = true
		errs = append(errs, m.validateDecl(d)...)
	}
	return errors.Join(errs...)
}

func (m *Module) validateDecl(d *Decl) []error {
	var errs []error
	if d.Extends != "" && d.Kind != DeclStruct {
		errs = append(errs, m.errorf(ErrInvalidDeclaration, d, "", "only structs can extend a virtual struct"))
	}
	switch d.Kind {
	case DeclStruct, DeclVirtual:
		seen := make(map[string]bool, len(d.Fields))
		for _, f := range d.Fields {
			if !isIdent(f.Name) {
				errs = append(errs, m.errorf(ErrInvalidDeclaration, d, f.Name, "invalid field name"))
				continue
			}
			if seen[f.Name] {
				errs = append(errs, &Error{Kind: ErrDuplicateDeclaration, Module: m.Name, Decl: d.Name, Name: f.Name, Message: "duplicate field"})
				continue
			}
			seen[f.Name] = true
			if err := m.validateType(d, f.Name, f.Type); err != nil {
				errs = append(errs, err)
			}
		}
	case DeclUnion:
		if len(d.Variants) == 0 {
			errs = append(errs, m.errorf(ErrInvalidDeclaration, d, "", "enum must declare at least one variant"))
		}
		if d.TagKey() == d.PayloadKey() {
			errs = append(errs, m.errorf(ErrInvalidDeclaration, d, "", "tag and payload keys must differ, both are %q", d.TagKey()))
		}
		seen := make(map[string]bool, len(d.Variants))
		for _, v := range d.Variants {
			if !isIdent(v.Name) {
				errs = append(errs, m.errorf(ErrInvalidDeclaration, d, v.Name, "invalid variant name"))
				continue
			}
			if seen[v.Name] {
				errs = append(errs, &Error{Kind: ErrDuplicateDeclaration, Module: m.Name, Decl: d.Name, Name: v.Name, Message: "duplicate variant"})
				continue
			}
			seen[v.Name] = true
			if v.Payload != nil {
				if err := m.validateType(d, v.Name, v.Payload); err != nil {
					errs = append(errs, err)
				}
			}
		}
	case DeclNewType:
		if err := m.validateType(d, "", d.Wrapped); err != nil {
			errs = append(errs, err)
		}
	case DeclConst:
		errs = append(errs, m.validateConsts(d)...)
	default:
		errs = append(errs, m.errorf(ErrInvalidDeclaration, d, "", "unknown declaration kind %d", d.Kind))
	}
	return errs
}

func (m *Module) validateConsts(d *Decl) []error {
	t := d.ConstType
	if t == nil || t.Kind != KindInt && t.Kind != KindString {
		return []error{m.errorf(ErrInvalidDeclaration, d, "", "const type must be an integer or string, got %s", t)}
	}
	if err := m.validateType(d, "", t); err != nil {
		return []error{err}
	}
	var (
		errs []error
		seen = make(map[string]bool, len(d.Consts))
	)
	for _, c := range d.Consts {
		switch {
		case !isIdent(c.Name):
			errs = append(errs, m.errorf(ErrInvalidDeclaration, d, c.Name, "invalid const name"))
			continue
		case seen[c.Name]:
			errs = append(errs, &Error{Kind: ErrDuplicateDeclaration, Module: m.Name, Decl: d.Name, Name: c.Name, Message: "duplicate const"})
			continue
		}
		seen[c.Name] = true
		switch v := c.Value.(type) {
		case string:
			if t.Kind != KindString {
				errs = append(errs, m.errorf(ErrInvalidDeclaration, d, c.Name, "string value for %s const", t))
			}
		case int64:
			if t.Kind != KindInt {
				errs = append(errs, m.errorf(ErrInvalidDeclaration, d, c.Name, "integer value for %s const", t))
			} else if !fitsInt(v, t.Width) {
				errs = append(errs, m.errorf(ErrInvalidDeclaration, d, c.Name, "value %d overflows %s", v, t))
			}
		default:
			errs = append(errs, m.errorf(ErrInvalidDeclaration, d, c.Name, "unsupported const value %T", c.Value))
		}
	}
	return errs
}

// validateType checks a type tree of the declaration.
func (m *Module) validateType(d *Decl, field string, t *Type) error {
	if t == nil {
		return m.errorf(ErrInvalidDeclaration, d, field, "missing type")
	}
	if !t.Kind.Valid() {
		return m.errorf(ErrInvalidDeclaration, d, field, "unknown type kind %d", t.Kind)
	}
	switch t.Kind {
	case KindInt:
		switch t.Width {
		case 8, 16, 32, 64:
		default:
			return m.errorf(ErrInvalidDeclaration, d, field, "unsupported integer width %d", t.Width)
		}
	case KindOptional:
		if t.Elem != nil && t.Elem.Kind == KindOptional {
			return &Error{Kind: ErrInvalidOptionalNesting, Module: m.Name, Decl: d.Name, Field: field, Message: t.String()}
		}
		fallthrough
	case KindList, KindMap:
		if t.Elem == nil {
			return m.errorf(ErrInvalidDeclaration, d, field, "%s without item type", t.Kind)
		}
		return m.validateType(d, field, t.Elem)
	case KindRef:
		if t.Ref == nil || t.Ref.Name == "" {
			return m.errorf(ErrInvalidDeclaration, d, field, "reference without name")
		}
	}
	return nil
}

func (m *Module) errorf(kind error, d *Decl, field, format string, args ...any) *Error {
	e := &Error{Kind: kind, Module: m.Name, Field: field, Message: fmt.Sprintf(format, args...)}
	if d != nil {
		e.Decl = d.Name
	}
	return e
}

func fitsInt(v int64, width int) bool {
	switch width {
	case 8:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 16:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 32:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return true
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
