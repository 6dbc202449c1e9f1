// Package jsonschema implements a backend describing the structured value
// of every declaration as a JSON Schema (draft 2020-12) document.
//
// Module "include/base" is written to "include/base.schema.json" with one
// entry per declaration under "$defs". References to declarations of other
// modules are relative "$ref"s to their documents.
package jsonschema

import (
	"io"
	"math"
	"path"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/syssam/specgen/compiler/encoding"
	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/resolve"
	"github.com/syssam/specgen/spec"
)

// Draft is the JSON Schema dialect of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

const (
	bigIntPattern  = `^-?[0-9]+$`
	decimalPattern = `^-?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?$`
)

// Schema is a JSON Schema object.
type Schema = map[string]any

// Backend is the JSON Schema backend.
type Backend struct {
	cfg *gen.Config
}

var _ gen.Backend = (*Backend)(nil)

// New returns a JSON Schema backend.
func New(cfg *gen.Config) *Backend {
	if cfg == nil {
		cfg = gen.DefaultConfig()
	}
	return &Backend{cfg: cfg}
}

// Name implements gen.Backend.
func (*Backend) Name() string { return "jsonschema" }

// FileName returns the slash separated path of the document of m.
func FileName(m *spec.Module) string {
	return m.Name + ".schema.json"
}

// GenModule implements gen.Backend.
func (b *Backend) GenModule(m *resolve.Module) ([]*gen.Artifact, error) {
	doc := b.Document(m)
	name := FileName(m.Module)
	return []*gen.Artifact{{
		Dir:  path.Dir(name),
		Name: path.Base(name),
		Renderer: gen.RenderFunc(func(w io.Writer) error {
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			_, err = w.Write(append(data, '\n'))
			return err
		}),
	}}, nil
}

// Document returns the schema document of a module.
func (b *Backend) Document(m *resolve.Module) Schema {
	c := &converter{mod: m}
	defs := make(Schema)
	for _, d := range m.Ordered() {
		if s := c.decl(d); s != nil {
			defs[d.Name] = s
		}
	}
	doc := Schema{
		"$schema":  Draft,
		"$id":      FileName(m.Module),
		"$comment": b.cfg.HeaderComment(),
		"title":    m.Name,
		"$defs":    defs,
	}
	if m.Doc != "" {
		doc["description"] = m.Doc
	}
	return doc
}

type converter struct {
	mod *resolve.Module
}

// decl returns the schema of a declaration, or nil for declarations
// without values.
func (c *converter) decl(d *spec.Decl) Schema {
	var s Schema
	dr := encoding.ForDecl(d)
	switch d.Kind {
	case spec.DeclStruct:
		props := make(Schema)
		required := []string{}
		for _, f := range dr.Fields {
			p := c.typ(f.Rule.Type)
			if f.Field.Doc != "" {
				p["description"] = f.Field.Doc
			}
			props[f.Key] = p
			if f.Required {
				required = append(required, f.Key)
			}
		}
		s = Schema{"type": "object", "properties": props, "required": required}
	case spec.DeclUnion:
		variants := make([]any, 0, len(dr.Variants))
		for _, v := range dr.Variants {
			props := Schema{dr.TagKey: Schema{"const": v.Tag}}
			required := []string{dr.TagKey}
			if !v.Void() {
				props[dr.PayloadKey] = c.typ(v.Rule.Type)
				if v.Rule.Kind != encoding.Nullable {
					required = append(required, dr.PayloadKey)
				}
			}
			vs := Schema{"type": "object", "title": v.Tag, "properties": props, "required": required}
			if v.Variant.Doc != "" {
				vs["description"] = v.Variant.Doc
			}
			variants = append(variants, vs)
		}
		s = Schema{"oneOf": variants}
	case spec.DeclNewType:
		s = c.typ(d.Wrapped)
	case spec.DeclConst:
		values := make([]any, len(d.Consts))
		for i, k := range d.Consts {
			values[i] = k.Value
		}
		s = c.typ(d.ConstType)
		s["enum"] = values
	default:
		return nil
	}
	if d.Doc != "" {
		s["description"] = d.Doc
	}
	return s
}

// typ returns the schema of the structured value of t, following the
// encoding rule table.
func (c *converter) typ(t *spec.Type) Schema {
	r := encoding.For(t)
	switch r.Kind {
	case encoding.Identity:
		switch t.Kind {
		case spec.KindBool:
			return Schema{"type": "boolean"}
		case spec.KindInt:
			return Schema{
				"type":    "integer",
				"minimum": int64(math.MinInt64) >> (64 - t.Width),
				"maximum": int64(math.MaxInt64) >> (64 - t.Width),
			}
		case spec.KindFloat:
			return Schema{"type": "number"}
		default:
			return Schema{"type": "string"}
		}
	case encoding.DecimalString:
		pattern := decimalPattern
		if t.Kind == spec.KindBigInt {
			pattern = bigIntPattern
		}
		return Schema{"type": "string", "pattern": pattern}
	case encoding.ByteSequence:
		return Schema{
			"type":  "array",
			"items": Schema{"type": "integer", "minimum": 0, "maximum": 255},
		}
	case encoding.Passthrough:
		return Schema{}
	case encoding.Sequence:
		return Schema{"type": "array", "items": c.typ(t.Elem)}
	case encoding.Mapping:
		return Schema{"type": "object", "additionalProperties": c.typ(t.Elem)}
	case encoding.Nullable:
		return Schema{"anyOf": []any{Schema{"type": "null"}, c.typ(t.Elem)}}
	case encoding.Record, encoding.Tagged, encoding.Transparent:
		return Schema{"$ref": c.ref(r.Decl)}
	default:
		return Schema{"not": Schema{}}
	}
}

// ref returns the reference of a declaration relative to the document of
// the current module.
func (c *converter) ref(d *spec.Decl) string {
	ptr := "#/$defs/" + d.Name
	if d.Module() == c.mod.Module {
		return ptr
	}
	from := path.Dir(FileName(c.mod.Module))
	rel, err := filepath.Rel(filepath.FromSlash(from), filepath.FromSlash(FileName(d.Module())))
	if err != nil {
		return FileName(d.Module()) + ptr
	}
	return filepath.ToSlash(rel) + ptr
}
