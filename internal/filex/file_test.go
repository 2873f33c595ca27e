package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir(t *testing.T) {
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	dir, err := EnsureSubDir("exports")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op.
	again, err := EnsureSubDir("exports")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "draft.md")
	require.NoError(t, WriteText(path, "# Antrag"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Antrag", string(data))
}
