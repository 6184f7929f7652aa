package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args, returning the combined
// command output. Flag state is reset first so tests stay independent.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	convertOutput = ""
	cellsTag = ""
	cellsCode = false
	cellsMarkdown = false
	cellsJSON = false
	forceInit = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeNotebook drops a sample notebook into a temp dir and returns its path.
func writeNotebook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notebook.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleNotebook = `{
  "cells": [
    {"cell_id": "intro", "cell": {"cell_type": "markdown", "source": ["# Sample\n"]}},
    {"cell": {"cell_type": "code", "metadata": {"tags": ["test-run"]}, "source": ["print('hi')\n"], "outputs": [{"text": "hi\n"}]}}
  ]
}`

func TestConvert_ToStdout(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	out, err := execute(t, "convert", path)
	require.NoError(t, err)

	assert.Contains(t, out, `"nbformat": 4`)
	assert.Contains(t, out, `"nbformat_minor": 5`)
	assert.Contains(t, out, `"cell_id": "intro"`)
	assert.Contains(t, out, `"name": "stdout"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConvert_ToFile(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)
	outPath := filepath.Join(t.TempDir(), "out.json")

	_, err := execute(t, "convert", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kernel_info"`)
}

func TestConvert_Deterministic(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	first, err := execute(t, "convert", path)
	require.NoError(t, err)
	second, err := execute(t, "convert", path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvert_InvalidJSON(t *testing.T) {
	path := writeNotebook(t, "{not json")

	_, err := execute(t, "convert", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode")
}

func TestConvert_MissingFile(t *testing.T) {
	_, err := execute(t, "convert", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read")
}

func TestCells_Table(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	out, err := execute(t, "cells", path)
	require.NoError(t, err)

	assert.Contains(t, out, "intro")
	assert.Contains(t, out, "print-hi") // id derived from "print('hi')\n"
	assert.Contains(t, out, "2 cells found")
}

func TestCells_TagFilter(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	out, err := execute(t, "cells", path, "--tag", "test-*")
	require.NoError(t, err)

	assert.NotContains(t, out, "intro")
	assert.Contains(t, out, "1 cell found")
}

func TestCells_KindFilterJSON(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	out, err := execute(t, "cells", path, "--markdown", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"id":"intro"`)
	assert.Contains(t, lines[0], `"kind":"markdown"`)
}

func TestCells_ConflictingKindFlags(t *testing.T) {
	path := writeNotebook(t, sampleNotebook)

	_, err := execute(t, "cells", path, "--code", "--markdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting flags")
}

func TestID(t *testing.T) {
	out, err := execute(t, "id", "_-Abc-123-_", "Hello World!")
	require.NoError(t, err)

	assert.Equal(t, "abc-123\nhello-world\n", out)
}

func TestInit_CreatesProjectFiles(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(originalDir) })
	require.NoError(t, os.Chdir(tmpDir))

	_, err = execute(t, "init")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "nib.yml"))
	assert.FileExists(t, filepath.Join(tmpDir, "notebook.json"))

	// Re-running without --force refuses to clobber
	_, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")

	// --force reinitializes
	_, err = execute(t, "init", "--force")
	require.NoError(t, err)
}
