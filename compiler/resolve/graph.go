package resolve

import (
	"github.com/syssam/specgen/spec"
)

// Graph is a fully linked compilation. Every reference of every module is
// bound to its declaration.
type Graph struct {
	// Modules in dependency-first import order, ties broken by path.
	Modules []*Module

	byPath map[string]*Module
}

// Module returns the module with the given path, or nil.
func (g *Graph) Module(path string) *Module {
	return g.byPath[path]
}

// ModuleOf returns the module owning the declaration, or nil.
func (g *Graph) ModuleOf(d *spec.Decl) *Module {
	if d == nil || d.Module() == nil {
		return nil
	}
	return g.byPath[d.Module().Path]
}

// Module is a linked module together with the information backends need
// to emit it.
type Module struct {
	*spec.Module

	// Deps are the imported modules, one per distinct path, sorted by path.
	Deps []*Module

	order     []*spec.Decl
	component map[*spec.Decl]int
	recursive map[*spec.Decl]bool
	indirect  map[member]bool
}

// member identifies a field or variant of a declaration. The name of
// newtype members is empty.
type member struct {
	decl *spec.Decl
	name string
}

// Ordered returns the declarations in emission order: every declaration
// comes after the same-module declarations it references, ties and
// reference cycles keep declaration order.
func (m *Module) Ordered() []*spec.Decl {
	return m.order
}

// Component returns the index of the reference cycle group of d. Mutually
// recursive declarations share the same index.
func (m *Module) Component(d *spec.Decl) int {
	if c, ok := m.component[d]; ok {
		return c
	}
	return -1
}

// Recursive reports whether d references itself, directly or through
// other declarations.
func (m *Module) Recursive(d *spec.Decl) bool {
	return m.recursive[d]
}

// Indirect reports whether the declaration member holds a reference that is
// part of an inline reference cycle. Such references need an indirection
// (pointer, box) in targets whose aggregates have a statically known size.
// References held inside lists and maps are never inline.
func (m *Module) Indirect(d *spec.Decl, name string) bool {
	return m.indirect[member{decl: d, name: name}]
}

// Dep returns the dependency bound to the import alias, or nil.
func (m *Module) Dep(alias string) *Module {
	for _, imp := range m.Module.Imports {
		if imp.Alias != alias {
			continue
		}
		for _, dep := range m.Deps {
			if dep.Path == imp.Path {
				return dep
			}
		}
	}
	return nil
}
