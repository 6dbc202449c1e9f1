package resolve

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/specgen/spec"
)

// Resolve links the modules of a compilation into a Graph.
//
// Resolution runs in two passes. The first registers every module by path,
// validates it and binds its import aliases, rejecting unknown imports,
// ambiguous aliases and import cycles. The second binds every reference of
// every field, variant and newtype to its declaration and links extended
// virtual structs. Recursive declarations are legal; only recursion without
// any indirection point (newtypes wrapping each other) is rejected.
//
// Two aliases importing the same path share one module, so their
// references resolve to identical declarations.
func Resolve(mods ...*spec.Module) (*Graph, error) {
	r := &resolver{byPath: make(map[string]*spec.Module, len(mods))}
	for _, step := range []func() error{
		func() error { return r.register(mods) },
		r.bindImports,
		r.checkImportCycles,
		r.bindReferences,
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return r.link()
}

type resolver struct {
	mods   []*spec.Module // sorted by path
	byPath map[string]*spec.Module
}

func (r *resolver) register(mods []*spec.Module) error {
	var errs []error
	for _, m := range mods {
		if prev, ok := r.byPath[m.Path]; ok {
			if prev != m {
				errs = append(errs, &spec.Error{Kind: spec.ErrDuplicateDeclaration, Name: m.Path, Message: "module path given twice"})
			}
			continue
		}
		r.byPath[m.Path] = m
		r.mods = append(r.mods, m)
		if err := m.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	slices.SortFunc(r.mods, func(a, b *spec.Module) int { return strings.Compare(a.Path, b.Path) })
	return errors.Join(errs...)
}

func (r *resolver) bindImports() error {
	var errs []error
	for _, m := range r.mods {
		aliases := make(map[string]string, len(m.Imports))
		for _, imp := range m.Imports {
			if imp.Alias == "" {
				errs = append(errs, &spec.Error{Kind: spec.ErrInvalidDeclaration, Module: m.Name, Name: imp.Path, Message: "import without alias"})
				continue
			}
			if path, ok := aliases[imp.Alias]; ok && path != imp.Path {
				errs = append(errs, &spec.Error{
					Kind:    spec.ErrAmbiguousAlias,
					Module:  m.Name,
					Name:    imp.Alias,
					Message: fmt.Sprintf("bound to %q and %q", path, imp.Path),
				})
				continue
			}
			aliases[imp.Alias] = imp.Path
			dep, ok := r.byPath[imp.Path]
			if !ok {
				errs = append(errs, &spec.Error{Kind: spec.ErrUnresolvedImport, Module: m.Name, Name: imp.Path})
				continue
			}
			imp.Module = dep
		}
	}
	return errors.Join(errs...)
}

func importEdges(m *spec.Module) []*spec.Module {
	deps := make([]*spec.Module, 0, len(m.Imports))
	for _, imp := range m.Imports {
		if imp.Module != nil {
			deps = append(deps, imp.Module)
		}
	}
	return deps
}

func (r *resolver) checkImportCycles() error {
	var errs []error
	for _, scc := range components(r.mods, importEdges) {
		if !cyclic(scc, importEdges) {
			continue
		}
		path := cyclePath(scc, importEdges)
		names := make([]string, len(path))
		for i, m := range path {
			names[i] = m.Name
		}
		errs = append(errs, &spec.Error{Kind: spec.ErrImportCycle, Module: scc[0].Name, Message: strings.Join(names, " -> ")})
	}
	return errors.Join(errs...)
}

func (r *resolver) bindReferences() error {
	var errs []error
	for _, m := range r.mods {
		for _, d := range m.Decls {
			errs = append(errs, r.bindDecl(m, d)...)
		}
	}
	return errors.Join(errs...)
}

func (r *resolver) bindDecl(m *spec.Module, d *spec.Decl) []error {
	var errs []error
	if d.Extends != "" {
		if err := r.bindBase(m, d); err != nil {
			errs = append(errs, err)
		}
	}
	bind := func(name string, t *spec.Type) {
		t.Walk(func(t *spec.Type) {
			if t.Kind != spec.KindRef {
				return
			}
			if err := r.bindRef(m, d, name, t.Ref); err != nil {
				errs = append(errs, err)
			}
		})
	}
	switch d.Kind {
	case spec.DeclStruct, spec.DeclVirtual:
		for _, f := range d.Fields {
			bind(f.Name, f.Type)
		}
	case spec.DeclUnion:
		for _, v := range d.Variants {
			bind(v.Name, v.Payload)
		}
	case spec.DeclNewType:
		bind("", d.Wrapped)
	}
	return errs
}

func (r *resolver) bindBase(m *spec.Module, d *spec.Decl) error {
	base := m.Decl(d.Extends)
	switch {
	case base == nil:
		return &spec.Error{Kind: spec.ErrUnresolvedReference, Module: m.Name, Decl: d.Name, Name: d.Extends, Message: "extended declaration not found"}
	case base.Kind != spec.DeclVirtual:
		return &spec.Error{Kind: spec.ErrInvalidReference, Module: m.Name, Decl: d.Name, Name: d.Extends, Message: "only virtual structs can be extended, got " + base.Kind.String()}
	}
	d.Base = base
	seen := make(map[string]bool)
	for _, f := range d.AllFields() {
		if seen[f.Name] {
			return &spec.Error{Kind: spec.ErrDuplicateDeclaration, Module: m.Name, Decl: d.Name, Name: f.Name, Message: "field shadows a field of " + base.Name}
		}
		seen[f.Name] = true
	}
	return nil
}

func (r *resolver) bindRef(m *spec.Module, d *spec.Decl, field string, ref *spec.Ref) error {
	scope := m
	if ref.Namespace != "" {
		scope = nil
		for _, imp := range m.Imports {
			if imp.Alias == ref.Namespace {
				scope = imp.Module
				break
			}
		}
		if scope == nil {
			return &spec.Error{
				Kind:    spec.ErrUnresolvedReference,
				Module:  m.Name,
				Decl:    d.Name,
				Field:   field,
				Name:    ref.String(),
				Message: fmt.Sprintf("no import named %q", ref.Namespace),
			}
		}
	}
	target := scope.Decl(ref.Name)
	if target == nil {
		return &spec.Error{Kind: spec.ErrUnresolvedReference, Module: m.Name, Decl: d.Name, Field: field, Name: ref.String()}
	}
	if !target.Instantiable() {
		return &spec.Error{
			Kind:    spec.ErrInvalidReference,
			Module:  m.Name,
			Decl:    d.Name,
			Field:   field,
			Name:    ref.String(),
			Message: target.Kind.String() + " declarations have no values",
		}
	}
	ref.Decl = target
	return nil
}

// link builds the graph once every reference is bound.
func (r *resolver) link() (*Graph, error) {
	g := &Graph{byPath: make(map[string]*Module, len(r.mods))}
	for _, m := range r.mods {
		g.byPath[m.Path] = &Module{Module: m}
	}
	var errs []error
	for _, m := range r.mods {
		lm := g.byPath[m.Path]
		seen := make(map[string]bool)
		for _, dep := range importEdges(m) {
			if !seen[dep.Path] {
				seen[dep.Path] = true
				lm.Deps = append(lm.Deps, g.byPath[dep.Path])
			}
		}
		slices.SortFunc(lm.Deps, func(a, b *Module) int { return strings.Compare(a.Path, b.Path) })
		if err := lm.analyze(); err != nil {
			errs = append(errs, err)
			continue
		}
		Logger().Debug("module resolved",
			zap.String("module", m.Name),
			zap.Int("declarations", len(m.Decls)),
			zap.Int("imports", len(lm.Deps)))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	g.Modules = dependencyOrder(r.mods, g.byPath)
	return g, nil
}

// dependencyOrder orders modules so that every module comes after its
// dependencies. Among ready modules the smallest path goes first.
func dependencyOrder(sorted []*spec.Module, byPath map[string]*Module) []*Module {
	var (
		order  = make([]*Module, 0, len(sorted))
		placed = make(map[*Module]bool, len(sorted))
	)
	for len(order) < len(sorted) {
		for _, m := range sorted {
			lm := byPath[m.Path]
			if placed[lm] || slices.ContainsFunc(lm.Deps, func(dep *Module) bool { return !placed[dep] }) {
				continue
			}
			placed[lm] = true
			order = append(order, lm)
			break
		}
	}
	return order
}
