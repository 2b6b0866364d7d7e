package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

func TestInitLaysOutMetadataDirectory(t *testing.T) {
	worktree := filepath.Join(t.TempDir(), "repo")

	r, err := Init(worktree)
	require.NoError(t, err)

	head, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/main\n", string(head))

	for _, dir := range []string{"objects", "refs/heads", "refs/tags", "branches"} {
		info, err := os.Stat(filepath.Join(r.GitDir, filepath.FromSlash(dir)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	assert.NoError(t, r.Config.validate())
}

func TestInitRejectsNonEmptyDirectory(t *testing.T) {
	worktree := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(worktree, "existing"), []byte("x"), 0o666))

	_, err := Init(worktree)
	require.Error(t, err)
	assert.True(t, wyagerr.Is(err, wyagerr.CodeNotEmpty))
}

func TestDiscoverWalksUpward(t *testing.T) {
	worktree := filepath.Join(t.TempDir(), "repo")
	_, err := Init(worktree)
	require.NoError(t, err)

	nested := filepath.Join(worktree, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o777))

	r, err := Discover(nested)
	require.NoError(t, err)

	abs, err := filepath.Abs(worktree)
	require.NoError(t, err)
	assert.Equal(t, abs, r.Worktree)
}

func TestDiscoverFailsOutsideRepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, wyagerr.Is(err, wyagerr.CodeNotARepository))
}

