package spec

// A DeclKind represents the kind of a declaration.
type DeclKind uint8

// List of declaration kinds.
const (
	DeclStruct DeclKind = iota + 1
	DeclVirtual
	DeclUnion
	DeclNewType
	DeclConst
)

// String returns the declaration kind name as written in spec files.
func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclVirtual:
		return "virtual"
	case DeclUnion:
		return "enum"
	case DeclNewType:
		return "new_type"
	case DeclConst:
		return "const"
	default:
		return "invalid"
	}
}

// Default keys of the encoded form of tagged unions.
const (
	DefaultTag     = "type"
	DefaultPayload = "payload"
)

// Decl is a named top-level declaration of a module.
type Decl struct {
	Name string
	Kind DeclKind
	// Doc is passed through to the generated code unchanged.
	Doc        string
	Attributes map[string]string

	// Fields of structs and virtual structs, in declaration order.
	Fields []*Field
	// Extends names a local virtual declaration whose fields are
	// prepended to the fields of this struct.
	Extends string
	// Base is the linked Extends declaration.
	Base *Decl

	// Variants of tagged unions.
	Variants []*Variant
	// Tag and Payload override the keys of the encoded union.
	Tag, Payload string

	// Wrapped is the type of a newtype.
	Wrapped *Type

	// ConstType is the scalar type of a const group.
	ConstType *Type
	// Consts are the bindings of a const group.
	Consts []*Const

	module *Module
}

// Field is a struct field.
type Field struct {
	Name       string
	Type       *Type
	Required   bool
	Doc        string
	Attributes map[string]string
}

// Variant is a tagged union variant. A nil Payload marks a void variant.
type Variant struct {
	Name    string
	Payload *Type
	Doc     string
}

// Const is a named literal of a const group. Value is an int64 or a string.
type Const struct {
	Name  string
	Value any
	Doc   string
}

// NewStruct returns a struct declaration.
func NewStruct(name string, fields ...*Field) *Decl {
	return &Decl{Name: name, Kind: DeclStruct, Fields: fields}
}

// NewVirtual returns a virtual struct declaration.
func NewVirtual(name string, fields ...*Field) *Decl {
	return &Decl{Name: name, Kind: DeclVirtual, Fields: fields}
}

// NewUnion returns a tagged union declaration using the default keys.
func NewUnion(name string, variants ...*Variant) *Decl {
	return &Decl{Name: name, Kind: DeclUnion, Variants: variants}
}

// NewNewType returns a newtype declaration.
func NewNewType(name string, wrapped *Type) *Decl {
	return &Decl{Name: name, Kind: DeclNewType, Wrapped: wrapped}
}

// NewConstGroup returns a const group declaration.
func NewConstGroup(name string, typ *Type, consts ...*Const) *Decl {
	return &Decl{Name: name, Kind: DeclConst, ConstType: typ, Consts: consts}
}

// Required returns a required field.
func Required(name string, t *Type) *Field {
	return &Field{Name: name, Type: t, Required: true}
}

// OptionalField returns an optional field. Use [Optional] to build
// optional types nested in other types.
func OptionalField(name string, t *Type) *Field {
	return &Field{Name: name, Type: t}
}

// WithDoc sets the field documentation.
func (f *Field) WithDoc(doc string) *Field {
	f.Doc = doc
	return f
}

// NewVariant returns a variant with the given payload type (nil for void).
func NewVariant(name string, payload *Type) *Variant {
	return &Variant{Name: name, Payload: payload}
}

// WithKeys sets the discriminator and payload keys of a union.
func (d *Decl) WithKeys(tag, payload string) *Decl {
	d.Tag, d.Payload = tag, payload
	return d
}

// WithDoc sets the declaration documentation.
func (d *Decl) WithDoc(doc string) *Decl {
	d.Doc = doc
	return d
}

// Module returns the module owning the declaration.
func (d *Decl) Module() *Module { return d.module }

// QualifiedName returns the declaration name prefixed with its module name.
func (d *Decl) QualifiedName() string {
	if d.module == nil || d.module.Name == "" {
		return d.Name
	}
	return d.module.Name + "." + d.Name
}

// TagKey returns the discriminator key of a union.
func (d *Decl) TagKey() string {
	if d.Tag != "" {
		return d.Tag
	}
	return DefaultTag
}

// PayloadKey returns the payload key of a union.
func (d *Decl) PayloadKey() string {
	if d.Payload != "" {
		return d.Payload
	}
	return DefaultPayload
}

// Instantiable reports if values of the declaration exist at runtime.
func (d *Decl) Instantiable() bool {
	switch d.Kind {
	case DeclStruct, DeclUnion, DeclNewType:
		return true
	default:
		return false
	}
}

// AllFields returns the fields of the linked base (if any) followed
// by the struct's own fields.
func (d *Decl) AllFields() []*Field {
	if d.Base == nil {
		return d.Fields
	}
	base := d.Base.AllFields()
	fields := make([]*Field, 0, len(base)+len(d.Fields))
	fields = append(fields, base...)
	return append(fields, d.Fields...)
}

// Types returns the top-level types held by the declaration: field types,
// variant payloads or the wrapped type.
func (d *Decl) Types() []*Type {
	var types []*Type
	switch d.Kind {
	case DeclStruct, DeclVirtual:
		for _, f := range d.Fields {
			types = append(types, f.Type)
		}
	case DeclUnion:
		for _, v := range d.Variants {
			if v.Payload != nil {
				types = append(types, v.Payload)
			}
		}
	case DeclNewType:
		types = append(types, d.Wrapped)
	}
	return types
}

// EffectiveType returns the type of the field value: non-required
// fields are optional.
func (f *Field) EffectiveType() *Type {
	if f.Required || f.Type == nil || f.Type.Kind == KindOptional {
		return f.Type
	}
	return Optional(f.Type)
}

// Void reports if the variant carries no payload.
func (v *Variant) Void() bool { return v.Payload == nil }
