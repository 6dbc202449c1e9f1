package spec

// Module is a named unit owning an ordered set of declarations.
type Module struct {
	// Name is the slash separated module name, e.g. "include/base".
	Name string
	// Path identifies the module in a compilation. Imports refer to
	// modules by path, so two aliases of one path share one module.
	Path    string
	Doc     string
	Imports []*Import
	Decls   []*Decl
	// Meta holds per-backend key/value settings, e.g. Meta["go"]["package"].
	Meta map[string]map[string]string

	decls map[string]*Decl
}

// Import binds the module at Path under a local Alias.
type Import struct {
	Alias string
	Path  string
	// Module is the imported module, set once the import is bound.
	Module *Module
}

// NewModule returns an empty module. The path defaults to the name.
func NewModule(name string) *Module {
	return &Module{Name: name, Path: name}
}

// Add appends declarations to the module and takes ownership of them.
func (m *Module) Add(decls ...*Decl) *Module {
	for _, d := range decls {
		d.module = m
		m.Decls = append(m.Decls, d)
		if m.decls != nil {
			if _, ok := m.decls[d.Name]; !ok {
				m.decls[d.Name] = d
			}
		}
	}
	return m
}

// Import adds an import of the module at path under alias.
func (m *Module) Import(alias, path string) *Module {
	m.Imports = append(m.Imports, &Import{Alias: alias, Path: path})
	return m
}

// Decl returns the declaration with the given name, or nil.
func (m *Module) Decl(name string) *Decl {
	if m.decls == nil {
		m.decls = make(map[string]*Decl, len(m.Decls))
		for _, d := range m.Decls {
			if _, ok := m.decls[d.Name]; !ok {
				m.decls[d.Name] = d
			}
		}
	}
	return m.decls[name]
}

// MetaValue returns the meta value stored for backend under key.
func (m *Module) MetaValue(backend, key string) string {
	if m.Meta == nil {
		return ""
	}
	return m.Meta[backend][key]
}
