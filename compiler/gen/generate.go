package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/specgen/compiler/resolve"
)

// Generator renders the modules of a linked graph with one or more backends.
//
// Example:
//
//	import "github.com/syssam/specgen/compiler/gen/golang"
//
//	g := gen.NewGenerator(graph, cfg).WithBackend(golang.New(cfg))
//	err := g.Generate(ctx)
type Generator struct {
	graph    *resolve.Graph
	cfg      *Config
	workers  int
	backends []Backend
}

// NewGenerator creates a generator of the graph. A nil config means
// DefaultConfig.
func NewGenerator(g *resolve.Graph, cfg *Config) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Generator{
		graph:   g,
		cfg:     cfg,
		workers: cfg.WorkerCount(),
	}
}

// WithBackend adds backends to the generator.
func (g *Generator) WithBackend(backends ...Backend) *Generator {
	for _, b := range backends {
		if b != nil {
			g.backends = append(g.backends, b)
		}
	}
	return g
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Render renders every module with every backend in memory. Modules are
// rendered in parallel; the returned files are ordered by backend, then
// by module in graph order, then by artifact order.
func (g *Generator) Render(ctx context.Context) ([]*File, error) {
	if len(g.backends) == 0 {
		return nil, NewConfigError("Backends", nil, "no backend set: call WithBackend() before Generate()")
	}
	if g.graph == nil {
		return nil, NewConfigError("Graph", nil, "no graph to generate")
	}
	type job struct {
		backend Backend
		module  *resolve.Module
	}
	var jobs []job
	for _, b := range g.backends {
		for _, m := range g.graph.Modules {
			jobs = append(jobs, job{backend: b, module: m})
		}
	}

	results := make([][]*File, len(jobs))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for i, j := range jobs {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := g.renderModule(j.backend, j.module)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}

	var files []*File
	seen := make(map[string]string)
	for i, fs := range results {
		for _, f := range fs {
			if prev, ok := seen[f.Path]; ok {
				return nil, NewGenerationError(jobs[i].backend.Name(), jobs[i].module.Name, f.Path,
					fmt.Sprintf("file also generated by backend %s", prev), nil)
			}
			seen[f.Path] = jobs[i].backend.Name()
			files = append(files, f)
		}
	}
	return files, nil
}

func (g *Generator) renderModule(b Backend, m *resolve.Module) ([]*File, error) {
	artifacts, err := b.GenModule(m)
	if err != nil {
		return nil, NewGenerationError(b.Name(), m.Name, "", "", err)
	}
	files := make([]*File, 0, len(artifacts))
	for _, a := range artifacts {
		var buf bytes.Buffer
		if err := a.Render(&buf); err != nil {
			return nil, NewGenerationError(b.Name(), m.Name, a.Path(), "render", err)
		}
		files = append(files, &File{Path: a.Path(), Content: buf.Bytes()})
		Logger().Debug("file rendered",
			zap.String("backend", b.Name()),
			zap.String("module", m.Name),
			zap.String("file", a.Path()),
			zap.Int("bytes", buf.Len()),
		)
	}
	return files, nil
}

// Generate renders all files and writes them under the target directory.
// Nothing is written unless every module of every backend rendered.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg.Target == "" {
		return NewConfigError("Target", nil, "target directory cannot be empty")
	}
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}
	return WriteFiles(g.cfg.Target, files)
}

// WriteFiles writes rendered files under dir, creating directories as needed.
// Every file is first staged in a temporary file next to its target, and
// targets are replaced only once all files are staged. A failed staging
// leaves the existing tree untouched.
func WriteFiles(dir string, files []*File) error {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}
	for _, f := range files {
		tmp, err := stage(filepath.Join(dir, filepath.FromSlash(f.Path)), f)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
	}
	for i, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.Rename(staged[i], path); err != nil {
			staged = staged[i:]
			cleanup()
			return NewGenerationError("", "", f.Path, "replace file", err)
		}
		Logger().Debug("file written", zap.String("path", path))
	}
	return nil
}

// stage writes the content of f to a temporary file in the directory of
// path and returns its name.
func stage(path string, f *File) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", NewGenerationError("", "", f.Path, "create directory", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", NewGenerationError("", "", f.Path, "create file", err)
	}
	_, err = tmp.Write(f.Content)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", NewGenerationError("", "", f.Path, "write file", err)
	}
	return tmp.Name(), nil
}
