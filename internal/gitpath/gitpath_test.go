package gitpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	m := New("/repo/.git")
	assert.Equal(t, filepath.Join("/repo/.git", "objects", "ab"), m.Path("objects", "ab"))
}

func TestDirCreatesMissingParents(t *testing.T) {
	root := t.TempDir()
	m := New(root)

	p, err := m.Dir(true, "refs", "heads")
	require.NoError(t, err)
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDirWithoutCreateReturnsEmpty(t *testing.T) {
	root := t.TempDir()
	m := New(root)

	p, err := m.Dir(false, "refs", "heads")
	require.NoError(t, err)
	assert.Equal(t, "", p)
}

func TestDirRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	m := New(root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "config"), []byte("x"), 0o666))

	_, err := m.Dir(false, "config")
	assert.Error(t, err)
}

func TestFileCreatesParentAndReturnsPath(t *testing.T) {
	root := t.TempDir()
	m := New(root)

	p, err := m.File(true, "refs", "heads", "main")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "refs", "heads", "main"), p)

	info, err := os.Stat(filepath.Join(root, "refs", "heads"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
