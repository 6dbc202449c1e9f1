package encoding

import "github.com/syssam/specgen/spec"

// DeclRule expands the rule of a declaration one level: the rules of its
// fields, variants or wrapped type.
type DeclRule struct {
	Decl *spec.Decl
	Kind Kind

	// Fields of records, base fields first. Every field is written on
	// encode, absent optionals as null.
	Fields []FieldRule

	// Variants of tagged unions and their keys.
	Variants   []VariantRule
	TagKey     string
	PayloadKey string

	// Wrapped is the rule of the wrapped type of transparent newtypes.
	Wrapped *Rule
}

// FieldRule is the rule of a record field.
type FieldRule struct {
	Field *spec.Field
	// Key is the mapping key of the field, its declared name.
	Key string
	// Required fields fail to decode when the key is missing.
	Required bool
	// Rule is the rule of the field value. Optional fields are nullable.
	Rule Rule
}

// VariantRule is the rule of a tagged union variant.
type VariantRule struct {
	Variant *spec.Variant
	// Tag is the discriminator value of the variant, its declared name.
	Tag string
	// Rule is the rule of the payload, nil for void variants. Void variants
	// encode the discriminator only and ignore the payload key on decode.
	Rule *Rule
}

// Void reports if the variant carries no payload.
func (v VariantRule) Void() bool { return v.Rule == nil }

// ForDecl returns the expanded rule of a declaration.
func ForDecl(d *spec.Decl) DeclRule {
	dr := DeclRule{Decl: d, Kind: declKind(d)}
	switch dr.Kind {
	case Record:
		for _, f := range d.AllFields() {
			dr.Fields = append(dr.Fields, FieldRule{
				Field:    f,
				Key:      f.Name,
				Required: f.Required,
				Rule:     For(f.EffectiveType()),
			})
		}
	case Tagged:
		dr.TagKey, dr.PayloadKey = d.TagKey(), d.PayloadKey()
		for _, v := range d.Variants {
			vr := VariantRule{Variant: v, Tag: v.Name}
			if !v.Void() {
				vr.Rule = elem(v.Payload)
			}
			dr.Variants = append(dr.Variants, vr)
		}
	case Transparent:
		dr.Wrapped = elem(d.Wrapped)
	}
	return dr
}

// Failures returns the decode failures of the declaration.
func (dr DeclRule) Failures() []error {
	s := make(failureSet)
	s.decl(dr.Decl, make(map[*spec.Decl]bool))
	return s.list()
}
