package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/gen/golang"
	"github.com/syssam/specgen/compiler/load"
	"github.com/syssam/specgen/compiler/resolve"
)

// TestModelUpToDate checks the committed model packages declare exactly
// the functions and types the generator emits for testdata/spec.
func TestModelUpToDate(t *testing.T) {
	mods, err := load.Files("testdata/spec/example.yaml")
	require.NoError(t, err)
	g, err := resolve.Resolve(mods...)
	require.NoError(t, err)
	cfg, err := gen.NewConfig(gen.WithPackage("github.com/syssam/specgen/internal/integration/model"))
	require.NoError(t, err)

	files, err := gen.NewGenerator(g, cfg).WithBackend(golang.New(cfg)).Render(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, f := range files {
		committed, err := os.ReadFile(filepath.Join("model", filepath.FromSlash(f.Path)))
		require.NoError(t, err, f.Path)
		assert.ElementsMatch(t, declarations(f.Content), declarations(committed), f.Path)
	}
}

// declarations returns the top-level func and type lines of a Go file.
func declarations(src []byte) []string {
	var out []string
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "func ") || strings.HasPrefix(line, "type ") {
			out = append(out, line)
		}
	}
	return out
}
