package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: "a.cs", Content: []byte("class A {}\n")},
		{Filename: "nested/b.cs", Content: []byte("class B {}\n")},
	}

	written, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.cs"), filepath.Join(dir, "nested", "b.cs")}, written)

	content, err := os.ReadFile(filepath.Join(dir, "nested", "b.cs"))
	require.NoError(t, err)
	assert.Equal(t, "class B {}\n", string(content))

	// Unchanged files are skipped.
	files[1].Content = []byte("class B2 {}\n")

	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "nested", "b.cs")}, written)

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are cleaned up")

	info, err := os.Stat(filepath.Join(dir, "a.cs"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}
