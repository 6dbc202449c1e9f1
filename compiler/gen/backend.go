package gen

import (
	"io"
	"path"

	"github.com/syssam/specgen/compiler/resolve"
)

// Backend emits the artifacts of one target language.
//
// GenModule is called concurrently for different modules of the same
// graph, so implementations must not mutate shared state. The linked
// modules are immutable during generation.
type Backend interface {
	// Name returns the backend name, e.g. "go".
	Name() string
	// GenModule renders the artifacts of a single module.
	GenModule(m *resolve.Module) ([]*Artifact, error)
}

// Renderer writes the content of an artifact. *jen.File implements it.
type Renderer interface {
	Render(w io.Writer) error
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(w io.Writer) error

// Render calls f(w).
func (f RenderFunc) Render(w io.Writer) error { return f(w) }

// Artifact is an output file of a backend.
type Artifact struct {
	// Dir is the slash separated directory relative to the target.
	Dir string
	// Name is the file name.
	Name string
	Renderer
}

// Path returns the slash separated path of the artifact relative to the target.
func (a *Artifact) Path() string {
	return path.Join(a.Dir, a.Name)
}

// File is a rendered artifact.
type File struct {
	// Path is slash separated and relative to the target directory.
	Path    string
	Content []byte
}
