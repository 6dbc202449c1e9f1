package resolve

import (
	"strings"

	"github.com/syssam/specgen/spec"
)

// analyze computes the emission order, the reference cycle groups and the
// inline references needing indirection of a linked module.
func (m *Module) analyze() error {
	decls := m.Decls
	position := make(map[*spec.Decl]int, len(decls))
	for i, d := range decls {
		position[d] = i
	}
	local := func(d *spec.Decl) bool {
		_, ok := position[d]
		return ok
	}

	refs := func(d *spec.Decl) []*spec.Decl {
		var out []*spec.Decl
		if d.Base != nil {
			out = append(out, d.Base)
		}
		for _, t := range d.Types() {
			t.Walk(func(t *spec.Type) {
				if target := t.Target(); target != nil && local(target) {
					out = append(out, target)
				}
			})
		}
		return out
	}
	sccs := components(decls, refs)
	m.component = make(map[*spec.Decl]int, len(decls))
	m.recursive = make(map[*spec.Decl]bool)
	for i, scc := range sccs {
		rec := cyclic(scc, refs)
		for _, d := range scc {
			m.component[d] = i
			if rec {
				m.recursive[d] = true
			}
		}
	}
	m.order = emissionOrder(sccs, m.component, position, refs)

	m.indirect = make(map[member]bool)
	inline := func(d *spec.Decl) []*spec.Decl {
		var out []*spec.Decl
		for _, e := range inlineMembers(d) {
			if local(e.target) {
				out = append(out, e.target)
			}
		}
		return out
	}
	for _, scc := range components(decls, inline) {
		if !cyclic(scc, inline) {
			continue
		}
		in := make(map[*spec.Decl]bool, len(scc))
		for _, d := range scc {
			in[d] = true
		}
		for _, d := range scc {
			for _, e := range inlineMembers(d) {
				if in[e.target] {
					m.indirect[member{decl: d, name: e.name}] = true
				}
			}
		}
	}
	return m.checkRecursion(decls)
}

type inlineRef struct {
	name   string
	target *spec.Decl
}

// inlineMembers returns the references held by value by the members of d:
// bare references and optional bare references, not nested in lists or maps.
func inlineMembers(d *spec.Decl) []inlineRef {
	var out []inlineRef
	add := func(name string, t *spec.Type) {
		if target := t.Unwrap().Target(); target != nil {
			out = append(out, inlineRef{name: name, target: target})
		}
	}
	switch d.Kind {
	case spec.DeclStruct:
		for _, f := range d.AllFields() {
			add(f.Name, f.Type)
		}
	case spec.DeclUnion:
		for _, v := range d.Variants {
			add(v.Name, v.Payload)
		}
	case spec.DeclNewType:
		add("", d.Wrapped)
	}
	return out
}

// checkRecursion rejects newtypes wrapping each other in a cycle. Such a
// type has no finite value.
func (m *Module) checkRecursion(decls []*spec.Decl) error {
	var newtypes []*spec.Decl
	for _, d := range decls {
		if d.Kind == spec.DeclNewType {
			newtypes = append(newtypes, d)
		}
	}
	if len(newtypes) == 0 {
		return nil
	}
	wraps := func(d *spec.Decl) []*spec.Decl {
		if target := d.Wrapped.Target(); target != nil && target.Kind == spec.DeclNewType {
			return []*spec.Decl{target}
		}
		return nil
	}
	for _, scc := range components(newtypes, wraps) {
		if !cyclic(scc, wraps) {
			continue
		}
		path := cyclePath(scc, wraps)
		names := make([]string, len(path))
		for i, d := range path {
			names[i] = d.Name
		}
		return &spec.Error{Kind: spec.ErrInvalidRecursion, Module: m.Name, Decl: scc[0].Name, Message: strings.Join(names, " -> ")}
	}
	return nil
}

// emissionOrder orders the components of the reference graph so that a
// component follows the components it references. Among ready components
// the one declared first goes first; members keep declaration order.
func emissionOrder(sccs [][]*spec.Decl, component map[*spec.Decl]int, position map[*spec.Decl]int, refs func(*spec.Decl) []*spec.Decl) []*spec.Decl {
	deps := make([]map[int]bool, len(sccs))
	for i, scc := range sccs {
		deps[i] = make(map[int]bool)
		for _, d := range scc {
			for _, t := range refs(d) {
				if c := component[t]; c != i {
					deps[i][c] = true
				}
			}
		}
	}
	var (
		order  = make([]*spec.Decl, 0, len(position))
		placed = make([]bool, len(sccs))
	)
	for range sccs {
		next := -1
		for i, scc := range sccs {
			if placed[i] || !ready(deps[i], placed) {
				continue
			}
			if next < 0 || position[scc[0]] < position[sccs[next][0]] {
				next = i
			}
		}
		placed[next] = true
		order = append(order, sccs[next]...)
	}
	return order
}

func ready(deps map[int]bool, placed []bool) bool {
	for c := range deps {
		if !placed[c] {
			return false
		}
	}
	return true
}
