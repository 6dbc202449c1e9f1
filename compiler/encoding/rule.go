// Package encoding is the rule table mapping every type of the IR to the
// shape of its structured value.
//
// The table is a pure function of the type. Backends consult it to emit
// serializers and deserializers that agree with each other, whatever the
// target language.
package encoding

import (
	"github.com/syssam/specgen"
	"github.com/syssam/specgen/spec"
)

// A Kind is the shape of an encoded value.
type Kind uint8

// Encoding kinds.
const (
	// NotEncodable marks types without runtime values: references to const
	// groups and virtual structs, or unbound references.
	NotEncodable Kind = iota
	// Identity scalars encode as themselves: bool, integers, f64, string.
	Identity
	// DecimalString encodes bigint and decimal values as decimal strings.
	DecimalString
	// ByteSequence encodes bytes as a sequence of integers in [0, 255].
	ByteSequence
	// Passthrough leaves json values untouched.
	Passthrough
	// Sequence encodes lists as ordered sequences. Empty lists encode as
	// empty sequences, never null.
	Sequence
	// Mapping encodes maps as string keyed mappings.
	Mapping
	// Nullable encodes optionals as the value or null.
	Nullable
	// Record encodes structs as a mapping with one key per field.
	Record
	// Tagged encodes unions as a mapping of a discriminator and a payload.
	Tagged
	// Transparent encodes newtypes as their wrapped type.
	Transparent
)

var kindNames = [...]string{
	NotEncodable:  "not encodable",
	Identity:      "identity",
	DecimalString: "decimal string",
	ByteSequence:  "byte sequence",
	Passthrough:   "passthrough",
	Sequence:      "sequence",
	Mapping:       "mapping",
	Nullable:      "nullable",
	Record:        "record",
	Tagged:        "tagged",
	Transparent:   "transparent",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Rule describes how values of a type map to and from structured values.
// Rules of references are shallow: Decl is set, and ForDecl expands it.
type Rule struct {
	Kind Kind
	Type *spec.Type
	// Elem is the rule of the item type of sequences and mappings, and of
	// the wrapped type of nullables.
	Elem *Rule
	// Decl is the referenced declaration of records, tagged unions and
	// transparent newtypes.
	Decl *spec.Decl
}

// For returns the encoding rule of t. For is total: every type, including
// nil and unbound references, has a rule.
func For(t *spec.Type) Rule {
	if t == nil {
		return Rule{Kind: NotEncodable}
	}
	r := Rule{Type: t}
	switch t.Kind {
	case spec.KindBool, spec.KindInt, spec.KindFloat, spec.KindString:
		r.Kind = Identity
	case spec.KindBigInt, spec.KindDecimal:
		r.Kind = DecimalString
	case spec.KindBytes:
		r.Kind = ByteSequence
	case spec.KindJSON:
		r.Kind = Passthrough
	case spec.KindList:
		r.Kind = Sequence
		r.Elem = elem(t.Elem)
	case spec.KindMap:
		r.Kind = Mapping
		r.Elem = elem(t.Elem)
	case spec.KindOptional:
		r.Kind = Nullable
		r.Elem = elem(t.Elem)
	case spec.KindRef:
		r.Decl = t.Target()
		r.Kind = declKind(r.Decl)
	default:
		r.Kind = NotEncodable
	}
	return r
}

func elem(t *spec.Type) *Rule {
	r := For(t)
	return &r
}

func declKind(d *spec.Decl) Kind {
	if d == nil {
		return NotEncodable
	}
	switch d.Kind {
	case spec.DeclStruct:
		return Record
	case spec.DeclUnion:
		return Tagged
	case spec.DeclNewType:
		return Transparent
	default:
		return NotEncodable
	}
}

// Encodable reports whether values of the rule exist at runtime.
func (r Rule) Encodable() bool {
	if r.Kind == NotEncodable {
		return false
	}
	if r.Elem != nil {
		return r.Elem.Encodable()
	}
	return true
}

// String describes the encoded shape, e.g. "nullable sequence of identity i8".
func (r Rule) String() string {
	switch r.Kind {
	case Identity:
		return "identity " + r.Type.String()
	case DecimalString:
		return "decimal string (" + r.Type.String() + ")"
	case Sequence, Mapping:
		return r.Kind.String() + " of " + r.Elem.String()
	case Nullable:
		return "nullable " + r.Elem.String()
	case Record, Tagged, Transparent:
		return r.Kind.String() + " " + r.Decl.QualifiedName()
	default:
		return r.Kind.String()
	}
}

// Failures returns the decode failures a value of the rule may produce,
// including the failures of referenced declarations, in taxonomy order.
func (r Rule) Failures() []error {
	s := make(failureSet)
	s.rule(r, make(map[*spec.Decl]bool))
	return s.list()
}

// taxonomy lists the decode failures in report order.
var taxonomy = []error{
	specgen.ErrMissingRequiredField,
	specgen.ErrUnknownVariant,
	specgen.ErrMalformedNumeric,
	specgen.ErrMalformedBytes,
	specgen.ErrTypeMismatch,
}

type failureSet map[error]bool

func (s failureSet) list() []error {
	var out []error
	for _, err := range taxonomy {
		if s[err] {
			out = append(out, err)
		}
	}
	return out
}

func (s failureSet) rule(r Rule, seen map[*spec.Decl]bool) {
	switch r.Kind {
	case Identity:
		s[specgen.ErrTypeMismatch] = true
		if k := r.Type.Kind; k == spec.KindInt || k == spec.KindFloat {
			s[specgen.ErrMalformedNumeric] = true
		}
	case DecimalString:
		s[specgen.ErrTypeMismatch] = true
		s[specgen.ErrMalformedNumeric] = true
	case ByteSequence:
		s[specgen.ErrTypeMismatch] = true
		s[specgen.ErrMalformedBytes] = true
	case Sequence, Mapping:
		s[specgen.ErrTypeMismatch] = true
		s.rule(*r.Elem, seen)
	case Nullable:
		s.rule(*r.Elem, seen)
	case Record, Tagged, Transparent:
		s.decl(r.Decl, seen)
	}
}

func (s failureSet) decl(d *spec.Decl, seen map[*spec.Decl]bool) {
	if seen[d] {
		return
	}
	seen[d] = true
	dr := ForDecl(d)
	switch dr.Kind {
	case Record:
		s[specgen.ErrTypeMismatch] = true
		for _, f := range dr.Fields {
			if f.Required {
				s[specgen.ErrMissingRequiredField] = true
			}
			s.rule(f.Rule, seen)
		}
	case Tagged:
		s[specgen.ErrTypeMismatch] = true
		s[specgen.ErrMissingRequiredField] = true
		s[specgen.ErrUnknownVariant] = true
		for _, v := range dr.Variants {
			if !v.Void() {
				s.rule(*v.Rule, seen)
			}
		}
	case Transparent:
		s.rule(*dr.Wrapped, seen)
	}
}
