// Package load reads spec files into modules of the intermediate
// representation.
//
// Spec files are written in YAML (.yaml, .yml), JSON (.json) or CUE (.cue).
// Every file is one module, named after its path relative to the loader
// root without extension, e.g. "include/base" for include/base.yaml.
// Included files are loaded once and shared by every includer.
package load

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/syssam/specgen/spec"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("load: unsupported file format")

// Error is a failure to read, decode or convert a spec file.
type Error struct {
	File  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.Cause)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Cause }

// Loader loads spec files and the files they include.
type Loader struct {
	root    string
	modules map[string]*spec.Module
	order   []*spec.Module
}

// New returns a loader naming modules relative to root.
func New(root string) (*Loader, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("load: root %q: %w", root, err)
	}
	return &Loader{root: abs, modules: make(map[string]*spec.Module)}, nil
}

// Files loads the given files, rooted at the directory of the first one,
// and returns every loaded module in load order.
func Files(files ...string) ([]*spec.Module, error) {
	if len(files) == 0 {
		return nil, errors.New("load: no spec files")
	}
	l, err := New(filepath.Dir(files[0]))
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := l.Load(f); err != nil {
			return nil, err
		}
	}
	return l.Modules(), nil
}

// Modules returns the loaded modules in load order. Included modules
// come before the first module including them.
func (l *Loader) Modules() []*spec.Module {
	return l.order
}

// Load loads the spec file at path, and the files it includes.
func (l *Loader) Load(path string) (*spec.Module, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &Error{File: path, Cause: err}
	}
	return l.load(abs, nil)
}

// load loads the file at the absolute path abs. Files being loaded are
// tracked in stack; an include cycle binds the import and leaves it to
// the resolver to report.
func (l *Loader) load(abs string, stack map[string]*spec.Module) (*spec.Module, error) {
	if m, ok := l.modules[abs]; ok {
		return m, nil
	}
	if m, ok := stack[abs]; ok {
		return m, nil
	}
	name, err := l.moduleName(abs)
	if err != nil {
		return nil, &Error{File: abs, Cause: err}
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, &Error{File: abs, Cause: err}
	}
	f, err := Decode(abs, data)
	if err != nil {
		return nil, &Error{File: abs, Cause: err}
	}
	m := spec.NewModule(name)
	m.Doc = f.Desc
	m.Meta = f.Meta
	if stack == nil {
		stack = make(map[string]*spec.Module)
	}
	stack[abs] = m
	for _, inc := range f.Includes {
		if inc.Namespace == "" {
			return nil, &Error{File: abs, Cause: fmt.Errorf("include %q: missing namespace", inc.Path)}
		}
		p := inc.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(abs), filepath.FromSlash(p))
		}
		dep, err := l.load(p, stack)
		if err != nil {
			return nil, err
		}
		m.Import(inc.Namespace, dep.Path)
	}
	delete(stack, abs)
	if err := build(m, f); err != nil {
		return nil, &Error{File: abs, Cause: err}
	}
	l.modules[abs] = m
	l.order = append(l.order, m)
	Logger().Debug("module loaded",
		zap.String("module", m.Name),
		zap.String("file", abs),
		zap.Int("models", len(m.Decls)),
	)
	return m, nil
}

func (l *Loader) moduleName(abs string) (string, error) {
	rel, err := filepath.Rel(l.root, abs)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("file is outside of the root %s", l.root)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)), nil
}

// Decode decodes spec file content, picking the format from the path
// extension.
func Decode(path string, data []byte) (*File, error) {
	f := &File{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case ".cue":
		v := cuecontext.New().CompileBytes(data, cue.Filename(path))
		if err := v.Validate(cue.Concrete(true)); err != nil {
			return nil, fmt.Errorf("compile cue: %w", err)
		}
		b, err := v.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("export cue: %w", err)
		}
		if err := json.Unmarshal(b, f); err != nil {
			return nil, fmt.Errorf("decode cue: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}
