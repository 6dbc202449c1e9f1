package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// A Kind represents a type node kind.
type Kind uint8

// List of type kinds.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBigInt
	KindDecimal
	KindString
	KindBytes
	KindJSON
	KindList
	KindMap
	KindOptional
	KindRef
	endKinds
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "f64",
	KindBigInt:   "bigint",
	KindDecimal:  "decimal",
	KindString:   "string",
	KindBytes:    "bytes",
	KindJSON:     "json",
	KindList:     "list",
	KindMap:      "map",
	KindOptional: "optional",
	KindRef:      "ref",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports if the kind is one of the known kinds.
func (k Kind) Valid() bool { return k > KindInvalid && k < endKinds }

// Scalar reports if the kind has no nested types.
func (k Kind) Scalar() bool {
	switch k {
	case KindBool, KindInt, KindFloat, KindBigInt, KindDecimal, KindString, KindBytes, KindJSON:
		return true
	default:
		return false
	}
}

// Type is a node in a type tree. Composite kinds hold their nested
// type in Elem, and references hold the referenced name in Ref.
type Type struct {
	Kind Kind
	// Width is the bit size of KindInt types (8, 16, 32 or 64).
	Width int
	// Elem is the item type of lists, the value type of maps and
	// the wrapped type of optionals.
	Elem *Type
	// Ref is set for KindRef types.
	Ref *Ref
}

// Ref is a named reference to a declaration. Namespace is the import
// alias, or empty for a declaration of the same module.
type Ref struct {
	Namespace string
	Name      string
	// Decl is the declaration the reference was bound to by the resolver.
	// It is nil until the module graph is linked.
	Decl *Decl
}

// Bool returns the bool type.
func Bool() *Type { return &Type{Kind: KindBool} }

// Int returns a signed integer type of the given bit width.
func Int(width int) *Type { return &Type{Kind: KindInt, Width: width} }

// Int8 returns the i8 type.
func Int8() *Type { return Int(8) }

// Int16 returns the i16 type.
func Int16() *Type { return Int(16) }

// Int32 returns the i32 type.
func Int32() *Type { return Int(32) }

// Int64 returns the i64 type.
func Int64() *Type { return Int(64) }

// Float returns the f64 type.
func Float() *Type { return &Type{Kind: KindFloat, Width: 64} }

// BigInt returns the arbitrary precision integer type.
func BigInt() *Type { return &Type{Kind: KindBigInt} }

// Decimal returns the arbitrary precision decimal type.
func Decimal() *Type { return &Type{Kind: KindDecimal} }

// String returns the string type.
func String() *Type { return &Type{Kind: KindString} }

// Bytes returns the byte sequence type.
func Bytes() *Type { return &Type{Kind: KindBytes} }

// JSON returns the untyped passthrough type.
func JSON() *Type { return &Type{Kind: KindJSON} }

// List returns a list of elem.
func List(elem *Type) *Type { return &Type{Kind: KindList, Elem: elem} }

// Map returns a string keyed map of elem.
func Map(elem *Type) *Type { return &Type{Kind: KindMap, Elem: elem} }

// Optional returns an optional elem.
func Optional(elem *Type) *Type { return &Type{Kind: KindOptional, Elem: elem} }

// Reference returns a reference to a declaration of the same module.
func Reference(name string) *Type {
	return &Type{Kind: KindRef, Ref: &Ref{Name: name}}
}

// ImportRef returns a reference to a declaration of the module imported under alias.
func ImportRef(alias, name string) *Type {
	return &Type{Kind: KindRef, Ref: &Ref{Namespace: alias, Name: name}}
}

// Target returns the declaration a reference type is bound to, or nil.
func (t *Type) Target() *Decl {
	if t == nil || t.Kind != KindRef || t.Ref == nil {
		return nil
	}
	return t.Ref.Decl
}

// Unwrap strips one level of optionality.
func (t *Type) Unwrap() *Type {
	if t != nil && t.Kind == KindOptional {
		return t.Elem
	}
	return t
}

// Walk calls fn for t and every nested type, parents first.
// Walking stops at references; referenced declarations are not visited.
func (t *Type) Walk(fn func(*Type)) {
	if t == nil {
		return
	}
	fn(t)
	if t.Elem != nil {
		t.Elem.Walk(fn)
	}
}

// String returns the type in spec syntax, e.g. "list[optional[i8]]".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindInt:
		return "i" + strconv.Itoa(t.Width)
	case KindList, KindMap, KindOptional:
		return t.Kind.String() + "[" + t.Elem.String() + "]"
	case KindRef:
		if t.Ref == nil {
			return "ref[?]"
		}
		return t.Ref.String()
	default:
		return t.Kind.String()
	}
}

// String returns the qualified reference name.
func (r *Ref) String() string {
	if r.Namespace == "" {
		return r.Name
	}
	return r.Namespace + "." + r.Name
}

// ParseType parses a type expression in spec syntax. Scalars are written
// by name (bool, i8, i16, i32, i64, f64, bigint, decimal, string, bytes, json),
// composites as list[T], map[T] (string keyed) and optional[T], and references
// as Name or alias.Name.
func ParseType(s string) (*Type, error) {
	t, rest, err := parseType(s)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("spec: invalid type %q: unexpected %q", s, rest)
	}
	return t, nil
}

var scalars = map[string]func() *Type{
	"bool":    Bool,
	"i8":      Int8,
	"i16":     Int16,
	"i32":     Int32,
	"i64":     Int64,
	"f64":     Float,
	"bigint":  BigInt,
	"decimal": Decimal,
	"string":  String,
	"bytes":   Bytes,
	"json":    JSON,
}

var composites = map[string]func(*Type) *Type{
	"list":     List,
	"map":      Map,
	"optional": Optional,
}

func parseType(s string) (*Type, string, error) {
	s = strings.TrimSpace(s)
	ident, rest := splitIdent(s)
	if ident == "" {
		return nil, "", fmt.Errorf("spec: invalid type %q", s)
	}
	if newType, ok := scalars[ident]; ok {
		return newType(), rest, nil
	}
	if newType, ok := composites[ident]; ok {
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "[") {
			return nil, "", fmt.Errorf("spec: invalid type %q: %s requires an item type", s, ident)
		}
		elem, rest, err := parseType(rest[1:])
		if err != nil {
			return nil, "", err
		}
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "]") {
			return nil, "", fmt.Errorf("spec: invalid type %q: missing ]", s)
		}
		return newType(elem), rest[1:], nil
	}
	if ns, name, ok := strings.Cut(ident, "."); ok {
		if ns == "" || name == "" || strings.Contains(name, ".") {
			return nil, "", fmt.Errorf("spec: invalid reference %q", ident)
		}
		return ImportRef(ns, name), rest, nil
	}
	return Reference(ident), rest, nil
}

// splitIdent splits s after its leading identifier (letters, digits, '_' and '.').
func splitIdent(s string) (string, string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '_' || c == '.' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}
