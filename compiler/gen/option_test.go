package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	t.Run("sets package", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithPackage("github.com/test/project/model")(c))
		assert.Equal(t, "github.com/test/project/model", c.Package)
	})

	t.Run("empty package returns error", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("")(c)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("malformed import path", func(t *testing.T) {
		for _, pkg := range []string{"github.com/test/", "github.com/a b"} {
			err := WithPackage(pkg)(&Config{})
			assert.Error(t, err, pkg)
		}
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./model")(c))
		assert.Equal(t, "./model", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Target")
	})
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.Workers)
	require.NoError(t, WithWorkers(0)(c))
	assert.Equal(t, 0, c.Workers)
	assert.Error(t, WithWorkers(-2)(c))
}

func TestWithBackends(t *testing.T) {
	t.Run("deduplicates in order", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithBackends("jsonschema", "go", "jsonschema")(c))
		assert.Equal(t, []string{"jsonschema", "go"}, c.Backends)
	})

	t.Run("requires a backend", func(t *testing.T) {
		assert.Error(t, WithBackends()(&Config{}))
		assert.Error(t, WithBackends("go", "")(&Config{}))
	})
}

func TestWithRuntimePackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithRuntimePackage("example.com/rt")(c))
	assert.Equal(t, "example.com/rt", c.Runtime)
	assert.Error(t, WithRuntimePackage("")(c))
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage("github.com/test/project"),
			WithTarget("./model"),
			WithHeader("// Custom"),
		)

		require.NoError(t, err)
		assert.Equal(t, "github.com/test/project", c.Package)
		assert.Equal(t, "./model", c.Target)
		assert.Equal(t, "// Custom", c.Header)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage(""),       // Error
			WithTarget("./model"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Package)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""), // Error
			WithTarget(""),  // Error
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Equal(t, 2, len(unwrapper.Unwrap()))
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage("github.com/test"),
			WithTarget("./model"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("creates config with options", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage("github.com/test/project"),
			WithTarget("./model"),
		)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/project", c.Package)
		assert.Equal(t, "./model", c.Target)
		assert.Equal(t, defaultHeader, c.Header)
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage(""),
		)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(
			WithPackage("github.com/test/project"),
		)

		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/project", c.Package)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithPackage(""))
		})
	})
}
