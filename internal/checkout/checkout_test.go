package checkout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/objstore"
	"github.com/levijpuckett/wyag/internal/objstore/filedriver"
)

func buildSampleTree(t *testing.T) (*objstore.Store, objhash.Digest) {
	store := objstore.New(filedriver.New(t.TempDir()))

	fileID, err := store.Write(object.Blob{Data: []byte("contents\n")}, true)
	require.NoError(t, err)

	subtreeID, err := store.Write(object.Tree{Entries: []object.TreeEntry{
		{Mode: "100644", Path: "nested.txt", ID: fileID},
	}}, true)
	require.NoError(t, err)

	rootID, err := store.Write(object.Tree{Entries: []object.TreeEntry{
		{Mode: "100644", Path: "top.txt", ID: fileID},
		{Mode: "40000", Path: "sub", ID: subtreeID},
	}}, true)
	require.NoError(t, err)

	return store, rootID
}

func TestWalkNonRecursive(t *testing.T) {
	store, rootID := buildSampleTree(t)

	entries, err := Walk(store, rootID, false)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var names []string
	for _, e := range entries {
		names = append(names, e.Path)
	}
	assert.ElementsMatch(t, []string{"top.txt", "sub"}, names)
}

func TestWalkRecursiveDescendsSubtrees(t *testing.T) {
	store, rootID := buildSampleTree(t)

	entries, err := Walk(store, rootID, true)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Path)
	}
	assert.ElementsMatch(t, []string{"top.txt", filepath.Join("sub", "nested.txt")}, names)
}

func TestCheckoutMaterializesFiles(t *testing.T) {
	store, rootID := buildSampleTree(t)
	dest := filepath.Join(t.TempDir(), "out")

	require.NoError(t, Checkout(store, rootID, dest))

	data, err := os.ReadFile(filepath.Join(dest, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "contents\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "sub", "nested.txt"))
	require.NoError(t, err)
	assert.Equal(t, "contents\n", string(data))
}

func TestCheckoutRejectsNonEmptyDestination(t *testing.T) {
	store, rootID := buildSampleTree(t)
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "existing"), []byte("x"), 0o666))

	err := Checkout(store, rootID, dest)
	assert.Error(t, err)
}
