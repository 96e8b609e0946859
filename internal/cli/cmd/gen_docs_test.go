package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocs_Markdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	files, err := generateDocs(rootCmd, "markdown", dir)

	require.NoError(t, err)
	assert.Contains(t, files, "dumbed.md")
	assert.Contains(t, files, "dumbed_replay.md")
	assert.Contains(t, files, "dumbed_layouts_delete.md")

	data, err := os.ReadFile(filepath.Join(dir, "dumbed_check.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Parse layout scripts without running them")
}

func TestGenerateDocs_Man(t *testing.T) {
	dir := t.TempDir()

	files, err := generateDocs(rootCmd, "man", dir)

	require.NoError(t, err)
	assert.Contains(t, files, "dumbed.1")
	assert.Contains(t, files, "dumbed-replay.1")
}

func TestGenerateDocs_UnknownFormat(t *testing.T) {
	_, err := generateDocs(rootCmd, "pdf", t.TempDir())
	assert.ErrorContains(t, err, "unsupported format")

	_, err = defaultDocsDir("pdf")
	assert.Error(t, err)
}

func TestDefaultDocsDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	dir, err := defaultDocsDir("man")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/data", "man", "man1"), dir)

	dir, err = defaultDocsDir("markdown")
	require.NoError(t, err)
	assert.Equal(t, "docs", dir)
}
