package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/nib/internal/config"
	"github.com/dyluth/nib/pkg/notebook"
)

// chdirTemp moves the test into a fresh temp directory and restores the
// working directory afterwards.
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(originalDir) })

	require.NoError(t, os.Chdir(tmpDir))
	return tmpDir
}

func TestInitialize_Fresh(t *testing.T) {
	chdirTemp(t)

	err := Initialize(false, config.Default())
	require.NoError(t, err)

	// nib.yml loads through the config package
	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)

	// notebook.json decodes through the notebook package
	raw, err := os.ReadFile(NotebookPath)
	require.NoError(t, err)

	nb, err := notebook.Decode(string(raw))
	require.NoError(t, err)
	require.Len(t, nb.Cells, 2)

	assert.Equal(t, "# Welcome to nib", nb.Title)
	assert.Equal(t, "welcome", nb.Cells[0].ID)
	_, isCode := nb.Cells[1].Cell.(notebook.CodeCell)
	assert.True(t, isCode)
	assert.Equal(t, []string{"example"}, notebook.TagsOf(nb.Cells[1].Cell))
}

func TestInitialize_CodeCellIDSurvivesNormalization(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, Initialize(false, config.Default()))

	raw, err := os.ReadFile(NotebookPath)
	require.NoError(t, err)

	nb, err := notebook.Decode(string(raw))
	require.NoError(t, err)

	// The generated UUID id must already satisfy the id contract, so
	// decode-time normalization leaves it intact (36 chars of lowercase
	// hex and hyphens).
	id := nb.Cells[1].ID
	assert.Len(t, id, 36)
	assert.Equal(t, notebook.NormalizeID(id), id)
}

func TestInitialize_UsesConfiguredKernelAndAuthors(t *testing.T) {
	chdirTemp(t)

	cfg := &config.Config{Version: "1.0", Kernel: "julia-1.9", Authors: []string{"Ada"}}
	require.NoError(t, Initialize(false, cfg))

	raw, err := os.ReadFile(NotebookPath)
	require.NoError(t, err)

	nb, err := notebook.Decode(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "julia-1.9", nb.Kernel)
	assert.Equal(t, []string{"Ada"}, nb.Authors)
}

func TestInitialize_ForceRemovesExistingFiles(t *testing.T) {
	tmpDir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.DefaultPath), []byte("old"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, NotebookPath), []byte("old"), 0644))

	err := Initialize(true, config.Default())
	require.NoError(t, err)

	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
}

func TestCheckExisting(t *testing.T) {
	chdirTemp(t)

	// Clean directory: no error
	require.NoError(t, CheckExisting())

	// With an existing nib.yml: error
	require.NoError(t, os.WriteFile(config.DefaultPath, []byte("version: \"1.0\"\n"), 0644))
	err := CheckExisting()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}
