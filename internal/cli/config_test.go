package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
patterns:
  - ./internal/...
  - ./examples/...
file_suffix: _gen.go
verbose: true
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"./internal/...", "./examples/..."}, cfg.Patterns)
	assert.Equal(t, "_gen.go", cfg.FileSuffix)
	assert.True(t, cfg.Verbose)
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte("verbose: false"))
	require.NoError(t, err)

	assert.Equal(t, []string{"./..."}, cfg.Patterns)
	assert.Empty(t, cfg.FileSuffix)
}

func TestParseConfigMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("patterns: {nope"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mirrorgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("patterns: [./shapes]"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./shapes"}, cfg.Patterns)
}
