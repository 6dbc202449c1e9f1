package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/resolve"
	"github.com/syssam/specgen/spec"
)

const testPackage = "github.com/test/project/model"

func newBackend() *Backend {
	return New(gen.MustNewConfig(gen.WithPackage(testPackage)))
}

func exampleGraph(t *testing.T) *resolve.Graph {
	t.Helper()
	base := spec.NewModule("include/base").Add(
		spec.NewNewType("Id", spec.Int64()),
	)
	user := spec.NewStruct("User",
		spec.OptionalField("name", spec.String()),
		spec.OptionalField("avatar", spec.Bytes()),
		spec.Required("balance", spec.Decimal()),
		spec.Required("stars", spec.BigInt()),
		spec.OptionalField("meta", spec.JSON()),
		spec.Required("tags", spec.Map(spec.String())),
		spec.OptionalField("number", spec.Reference("Number")),
	)
	user.Extends = "Entity"
	m := spec.NewModule("example").Import("base", "include/base").Add(
		user,
		spec.NewStruct("Empty"),
		spec.NewStruct("Node",
			spec.Required("value", spec.Int64()),
			spec.OptionalField("children", spec.List(spec.Reference("Node"))),
		),
		spec.NewUnion("Number",
			spec.NewVariant("Int64", spec.Int64()),
			spec.NewVariant("Big", spec.BigInt()),
			spec.NewVariant("Maybe", spec.Optional(spec.String())),
			spec.NewVariant("Nothing", nil),
		).WithKeys("kind", "data"),
		spec.NewVirtual("Entity", spec.Required("id", spec.ImportRef("base", "Id"))),
		spec.NewConstGroup("Code", spec.Int8(),
			&spec.Const{Name: "Ok", Value: int64(0)},
			&spec.Const{Name: "Failed", Value: int64(-1)},
		),
		spec.NewConstGroup("Reason", spec.String(), &spec.Const{Name: "NotFound", Value: "not_found"}),
		spec.NewNewType("Ids", spec.List(spec.ImportRef("base", "Id"))),
		spec.NewNewType("Boxed", spec.Reference("Number")),
		spec.NewNewType("Amount", spec.Optional(spec.Decimal())),
	)
	g, err := resolve.Resolve(m, base)
	require.NoError(t, err)
	return g
}

func render(t *testing.T, b *Backend, m *resolve.Module) string {
	t.Helper()
	f, err := b.File(m)
	require.NoError(t, err)
	return f.GoString()
}

func TestGenModule(t *testing.T) {
	g := exampleGraph(t)
	b := newBackend()

	artifacts, err := b.GenModule(g.Module("include/base"))
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "include/base/base.go", artifacts[0].Path())

	assert.Equal(t, "go", b.Name())
	assert.Equal(t, testPackage+"/include/base", b.ImportPath(g.Module("include/base").Module))
}

func TestPackageNameMeta(t *testing.T) {
	m := spec.NewModule("api/v1").Add(spec.NewStruct("Ping"))
	m.Meta = map[string]map[string]string{"go": {"package": "apiv1"}}
	g, err := resolve.Resolve(m)
	require.NoError(t, err)

	code := render(t, newBackend(), g.Module("api/v1"))
	assert.Contains(t, code, "package apiv1")
	artifacts, err := newBackend().GenModule(g.Module("api/v1"))
	require.NoError(t, err)
	assert.Equal(t, "api/v1/apiv1.go", artifacts[0].Path())
}

func TestGenStruct(t *testing.T) {
	code := render(t, newBackend(), exampleGraph(t).Module("example"))

	assert.Contains(t, code, "// Code generated by specgen. DO NOT EDIT.")
	assert.Contains(t, code, "package example")
	assert.Contains(t, code, `"github.com/test/project/model/include/base"`)
	assert.Contains(t, code, `"github.com/syssam/specgen"`)

	t.Run("fields", func(t *testing.T) {
		assert.Contains(t, code, "type User struct {")
		assert.Contains(t, code, "*string")
		assert.Contains(t, code, "*big.Int")
		assert.Contains(t, code, "decimal.Decimal")
		assert.Contains(t, code, "map[string]string")
	})

	t.Run("serialize", func(t *testing.T) {
		assert.Contains(t, code, "func (u User) Serialize() any {")
		assert.Contains(t, code, "u.ID.Serialize()")
		assert.Contains(t, code, "specgen.EncodeOptional(u.Name, specgen.EncodeScalar[string])")
		assert.Contains(t, code, "specgen.EncodeOptional(u.Avatar, specgen.EncodeBytes)")
		assert.Contains(t, code, "specgen.EncodeDecimal(u.Balance)")
		assert.Contains(t, code, "specgen.EncodeBigInt(u.Stars)")
		assert.Contains(t, code, "specgen.EncodeMap(u.Tags, specgen.EncodeScalar[string])")
		assert.Contains(t, code, "specgen.EncodeValue(u.Number)")
	})

	t.Run("deserialize", func(t *testing.T) {
		assert.Contains(t, code, "func DeserializeUser(v any) (User, error) {")
		assert.Contains(t, code, "m, err := specgen.DecodeObject(v)")
		assert.Contains(t, code, `out.ID, err = specgen.RequiredField(m, "id", base.DeserializeID)`)
		assert.Contains(t, code, `out.Name, err = specgen.OptionalField(m, "name", specgen.DecodeOptional(specgen.DecodeString))`)
		assert.Contains(t, code, `specgen.OptionalField(m, "meta", specgen.DecodeNullable(specgen.DecodeJSON))`)
		assert.Contains(t, code, `specgen.OptionalField(m, "number", specgen.DecodeNullable(DeserializeNumber))`)
		assert.Contains(t, code, `specgen.RequiredField(m, "tags", specgen.DecodeMap(specgen.DecodeString))`)
		assert.Contains(t, code, `return User{}, specgen.WrapDecl("User", err)`)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, code, "func (Empty) Serialize() any {")
		assert.Contains(t, code, "if _, err := specgen.DecodeObject(v); err != nil {")
		assert.Contains(t, code, "return Empty{}, nil")
	})

	t.Run("recursive", func(t *testing.T) {
		assert.Contains(t, code, "Children *[]Node")
		assert.Contains(t, code, `specgen.OptionalField(m, "children", specgen.DecodeOptional(specgen.DecodeList(DeserializeNode)))`)
		assert.Contains(t, code, "specgen.EncodeOptional(n.Children, func(x []Node) any {")
		assert.Contains(t, code, "return specgen.EncodeList(x, Node.Serialize)")
	})
}

func TestGenVirtual(t *testing.T) {
	code := render(t, newBackend(), exampleGraph(t).Module("example"))
	assert.Contains(t, code, "type Entity interface {")
	assert.Contains(t, code, "GetID() base.ID")
	assert.Contains(t, code, "func (u User) GetID() base.ID {")
	assert.Contains(t, code, "var _ Entity = User{}")
}

func TestGenUnion(t *testing.T) {
	code := render(t, newBackend(), exampleGraph(t).Module("example"))

	assert.Contains(t, code, "type Number interface {")
	assert.Contains(t, code, "specgen.Serializer")
	assert.Contains(t, code, "isNumber()")
	assert.Contains(t, code, "type NumberInt64 struct {")
	assert.Contains(t, code, "Payload int64")
	assert.Contains(t, code, "type NumberNothing struct{}")
	assert.Contains(t, code, "func (NumberInt64) isNumber() {}")
	assert.Contains(t, code, "func (ni NumberInt64) Serialize() any {")
	assert.Contains(t, code, "func (NumberNothing) Serialize() any {")
	assert.Contains(t, code, "specgen.EncodeBigInt(nb.Payload)")

	assert.Contains(t, code, "func DeserializeNumber(v any) (Number, error) {")
	assert.Contains(t, code, `tag, err := specgen.RequiredField(m, "kind", specgen.DecodeString)`)
	assert.Contains(t, code, `payload, err := specgen.RequiredField(m, "data", specgen.DecodeInt[int64])`)
	assert.Contains(t, code, `payload, err := specgen.OptionalField(m, "data", specgen.DecodeOptional(specgen.DecodeString))`)
	assert.Contains(t, code, `case "Nothing":`)
	assert.Contains(t, code, "return NumberNothing{}, nil")
	assert.Contains(t, code, "return NumberInt64{Payload: payload}, nil")
	assert.Contains(t, code, `return nil, specgen.UnknownVariant("Number", tag)`)
}

func TestGenNewType(t *testing.T) {
	g := exampleGraph(t)
	b := newBackend()

	t.Run("named type", func(t *testing.T) {
		code := render(t, b, g.Module("include/base"))
		assert.Contains(t, code, "package base")
		assert.Contains(t, code, "type ID int64")
		assert.Contains(t, code, "func (i ID) Serialize() any {")
		assert.Contains(t, code, "return int64(i)")
		assert.Contains(t, code, "x, err := specgen.DecodeInt[int64](v)")
		assert.Contains(t, code, `return ID(x), specgen.WrapDecl("Id", err)`)
	})

	code := render(t, b, g.Module("example"))

	t.Run("cross module", func(t *testing.T) {
		assert.Contains(t, code, "type Ids []base.ID")
		assert.Contains(t, code, "return specgen.EncodeList([]base.ID(i), base.ID.Serialize)")
		assert.Contains(t, code, "x, err := specgen.DecodeList(base.DeserializeID)(v)")
	})

	t.Run("wrapper", func(t *testing.T) {
		assert.Contains(t, code, "type Boxed struct {")
		assert.Contains(t, code, "Value Number")
		assert.Contains(t, code, "return specgen.EncodeValue(b.Value)")
		assert.Contains(t, code, `return Boxed{Value: x}, specgen.WrapDecl("Boxed", err)`)

		assert.Contains(t, code, "Value *decimal.Decimal")
		assert.Contains(t, code, "return specgen.EncodeOptional(a.Value, specgen.EncodeDecimal)")
	})
}

func TestGenConst(t *testing.T) {
	code := render(t, newBackend(), exampleGraph(t).Module("example"))
	assert.Contains(t, code, "type Code int8")
	assert.Contains(t, code, "CodeFailed Code = -1")
	assert.Contains(t, code, "var Codes = map[string]Code{")
	assert.Contains(t, code, `"Failed": CodeFailed,`)
	assert.Contains(t, code, "type Reason string")
	assert.Contains(t, code, `ReasonNotFound Reason = "not_found"`)
	assert.Contains(t, code, "var Reasons = map[string]Reason{")
	assert.NotContains(t, code, "DeserializeCode")
}

func TestGenIndirect(t *testing.T) {
	t.Run("struct cycle", func(t *testing.T) {
		m := spec.NewModule("cycle").Add(
			spec.NewStruct("A", spec.Required("b", spec.Reference("B"))),
			spec.NewStruct("B", spec.OptionalField("a", spec.Reference("A"))),
		)
		g, err := resolve.Resolve(m)
		require.NoError(t, err)

		code := render(t, newBackend(), g.Module("cycle"))
		assert.Contains(t, code, "B *B")
		assert.Contains(t, code, "A *A")
		assert.Contains(t, code, `specgen.RequiredField(m, "b", specgen.DecodePointer(DeserializeB))`)
		assert.Contains(t, code, "specgen.EncodePointer(a.B)")
		assert.Contains(t, code, `specgen.OptionalField(m, "a", specgen.DecodeOptional(DeserializeA))`)
	})

	t.Run("newtype cycle", func(t *testing.T) {
		m := spec.NewModule("cycle").Add(
			spec.NewStruct("S", spec.Required("n", spec.Reference("N"))),
			spec.NewNewType("N", spec.Reference("S")),
		)
		g, err := resolve.Resolve(m)
		require.NoError(t, err)

		code := render(t, newBackend(), g.Module("cycle"))
		assert.Contains(t, code, "Value *S")
		assert.Contains(t, code, "x, err := specgen.DecodePointer(DeserializeS)(v)")
		assert.Contains(t, code, "return specgen.EncodePointer(n.Value)")
	})
}

func TestImportShadowing(t *testing.T) {
	tests := []struct {
		dep   string
		name  string
		alias string
	}{
		{"m", "m", "mpkg"},
		{"shared/payload", "payload", "payloadpkg"},
		{"u", "u", "upkg"}, // receiver of User
		{"ids", "ids", ""},
	}
	for _, tt := range tests {
		t.Run(tt.dep, func(t *testing.T) {
			dep := spec.NewModule(tt.dep).Add(spec.NewNewType("Id", spec.Int64()))
			app := spec.NewModule("app").Import("d", tt.dep).Add(
				spec.NewStruct("User", spec.Required("id", spec.ImportRef("d", "Id"))),
				spec.NewUnion("Ref", spec.NewVariant("Id", spec.ImportRef("d", "Id"))),
			)
			g, err := resolve.Resolve(app, dep)
			require.NoError(t, err)

			code := render(t, newBackend(), g.Module("app"))
			qualifier := tt.alias
			if qualifier == "" {
				qualifier = tt.name
			} else {
				assert.Contains(t, code, tt.alias+` "`+testPackage+"/"+tt.dep+`"`)
			}
			assert.Contains(t, code, `specgen.RequiredField(m, "id", `+qualifier+".DeserializeID)")
			assert.Contains(t, code, "Payload "+qualifier+".ID")
		})
	}
}

func TestGenErrors(t *testing.T) {
	t.Run("missing package", func(t *testing.T) {
		g := exampleGraph(t)
		_, err := New(&gen.Config{}).GenModule(g.Module("example"))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("identifier collision", func(t *testing.T) {
		m := spec.NewModule("clash").Add(
			spec.NewUnion("Number", spec.NewVariant("Int", spec.Int64())),
			spec.NewStruct("NumberInt"),
		)
		g, err := resolve.Resolve(m)
		require.NoError(t, err)

		_, err = newBackend().GenModule(g.Module("clash"))
		require.Error(t, err)
		assert.True(t, gen.IsGenerationError(err))
		assert.Contains(t, err.Error(), "NumberInt")
	})

	t.Run("field collision", func(t *testing.T) {
		m := spec.NewModule("clash").Add(
			spec.NewStruct("S", spec.Required("a_b", spec.Bool()), spec.Required("aB", spec.Bool())),
		)
		g, err := resolve.Resolve(m)
		require.NoError(t, err)

		_, err = newBackend().GenModule(g.Module("clash"))
		assert.ErrorContains(t, err, "field aB conflicts with field a_b")
	})
}

func TestDeterministic(t *testing.T) {
	b := newBackend()
	first := render(t, b, exampleGraph(t).Module("example"))
	for range 3 {
		assert.Equal(t, first, render(t, b, exampleGraph(t).Module("example")))
	}
}
