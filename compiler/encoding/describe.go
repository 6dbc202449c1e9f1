package encoding

import (
	"fmt"
	"strings"

	"github.com/syssam/specgen/compiler/resolve"
	"github.com/syssam/specgen/spec"
)

// Describe renders the wire contract of every declaration of a linked
// module, in emission order.
func Describe(m *resolve.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", m.Name)
	if len(m.Imports) > 0 {
		imports := make([]string, len(m.Imports))
		for i, imp := range m.Imports {
			imports[i] = imp.Alias + " = " + imp.Path
		}
		fmt.Fprintf(&b, "imports: %s\n", strings.Join(imports, ", "))
	}
	for _, d := range m.Ordered() {
		b.WriteString("\n")
		describeDecl(&b, d)
	}
	return b.String()
}

func describeDecl(b *strings.Builder, d *spec.Decl) {
	switch d.Kind {
	case spec.DeclStruct:
		fmt.Fprintf(b, "struct %s", d.Name)
		if d.Base != nil {
			fmt.Fprintf(b, " extends %s", d.Base.Name)
		}
		b.WriteString(":\n")
		for _, f := range ForDecl(d).Fields {
			describeField(b, f.Field)
		}
	case spec.DeclVirtual:
		fmt.Fprintf(b, "virtual %s: %s\n", d.Name, NotEncodable)
		for _, f := range d.Fields {
			describeField(b, f)
		}
		return
	case spec.DeclUnion:
		dr := ForDecl(d)
		fmt.Fprintf(b, "enum %s (tag %q, payload %q):\n", d.Name, dr.TagKey, dr.PayloadKey)
		for _, v := range dr.Variants {
			if v.Void() {
				fmt.Fprintf(b, "  %s: void\n", v.Tag)
			} else {
				fmt.Fprintf(b, "  %s: %s\n", v.Tag, v.Rule)
			}
		}
	case spec.DeclNewType:
		fmt.Fprintf(b, "new_type %s: %s\n", d.Name, ForDecl(d).Wrapped)
	case spec.DeclConst:
		fmt.Fprintf(b, "const %s %s: %s\n", d.Name, d.ConstType, NotEncodable)
		for _, c := range d.Consts {
			if s, ok := c.Value.(string); ok {
				fmt.Fprintf(b, "  %s = %q\n", c.Name, s)
			} else {
				fmt.Fprintf(b, "  %s = %v\n", c.Name, c.Value)
			}
		}
		return
	}
	fmt.Fprintf(b, "  failures: %s\n", failureNames(ForDecl(d).Failures()))
}

func describeField(b *strings.Builder, f *spec.Field) {
	presence := "optional"
	if f.Required {
		presence = "required"
	}
	fmt.Fprintf(b, "  %s: %s, %s\n", f.Name, presence, For(f.EffectiveType()))
}

// FailureName returns the name of a decode failure, e.g. "unknown variant".
func FailureName(err error) string {
	return strings.TrimPrefix(err.Error(), "specgen: ")
}

func failureNames(errs []error) string {
	names := make([]string, len(errs))
	for i, err := range errs {
		names[i] = FailureName(err)
	}
	return strings.Join(names, ", ")
}
