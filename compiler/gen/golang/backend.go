package golang

import (
	"fmt"
	"path"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/resolve"
	"github.com/syssam/specgen/spec"
)

const (
	bigPkg     = "math/big"
	decimalPkg = "github.com/shopspring/decimal"
)

// Backend is the Go backend.
type Backend struct {
	cfg *gen.Config
}

var _ gen.Backend = (*Backend)(nil)

// New returns a Go backend. The config must set Package.
func New(cfg *gen.Config) *Backend {
	if cfg == nil {
		cfg = gen.DefaultConfig()
	}
	return &Backend{cfg: cfg}
}

// Name implements gen.Backend.
func (*Backend) Name() string { return "go" }

// GenModule implements gen.Backend.
func (b *Backend) GenModule(m *resolve.Module) ([]*gen.Artifact, error) {
	f, err := b.File(m)
	if err != nil {
		return nil, err
	}
	return []*gen.Artifact{{
		Dir:      m.Name,
		Name:     b.PackageName(m.Module) + ".go",
		Renderer: f,
	}}, nil
}

// ImportPath returns the import path of the package generated for m.
func (b *Backend) ImportPath(m *spec.Module) string {
	return path.Join(b.cfg.Package, m.Name)
}

// PackageName returns the name of the package generated for m.
func (b *Backend) PackageName(m *spec.Module) string {
	if name := m.MetaValue("go", "package"); name != "" {
		return name
	}
	return gen.PackageName(m.Name)
}

// File builds the Go file of a module.
func (b *Backend) File(m *resolve.Module) (*jen.File, error) {
	if b.cfg.Package == "" {
		return nil, gen.NewConfigError("Package", nil, "the go backend requires a package import path")
	}
	g := &generator{
		Backend: b,
		mod:     m,
		runtime: b.cfg.RuntimePath(),
	}
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	f := jen.NewFilePathName(b.ImportPath(m.Module), b.PackageName(m.Module))
	f.HeaderComment(b.cfg.HeaderComment())
	if m.Doc != "" {
		f.PackageComment(m.Doc)
	}
	f.ImportName(g.runtime, "specgen")
	f.ImportName(decimalPkg, "decimal")
	shadowed := g.locals()
	for _, dep := range m.Deps {
		name := b.PackageName(dep.Module)
		if shadowed[name] {
			f.ImportAlias(b.ImportPath(dep.Module), name+"pkg")
		} else {
			f.ImportName(b.ImportPath(dep.Module), name)
		}
	}
	for _, d := range m.Ordered() {
		switch d.Kind {
		case spec.DeclStruct:
			g.genStruct(f, d)
		case spec.DeclVirtual:
			g.genVirtual(f, d)
		case spec.DeclUnion:
			g.genUnion(f, d)
		case spec.DeclNewType:
			g.genNewType(f, d)
		case spec.DeclConst:
			g.genConst(f, d)
		default:
			return nil, fmt.Errorf("declaration %s: unexpected kind %s", d.Name, d.Kind)
		}
	}
	gen.Logger().Debug("go package built",
		zap.String("module", m.Name),
		zap.String("package", b.ImportPath(m.Module)),
		zap.Int("decls", len(m.Decls)),
	)
	return f, nil
}

// generator builds the file of one module.
type generator struct {
	*Backend
	mod     *resolve.Module
	runtime string
}

// rt returns a qualified identifier of the runtime package.
func (g *generator) rt(name string) *jen.Statement {
	return jen.Qual(g.runtime, name)
}

// qual returns the identifier name declared by the module of d, qualified
// when d lives in another module.
func (g *generator) qual(d *spec.Decl, name string) *jen.Statement {
	if d.Module() == g.mod.Module {
		return jen.Id(name)
	}
	return jen.Qual(g.ImportPath(d.Module()), name)
}
