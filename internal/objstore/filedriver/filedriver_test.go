package filedriver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	require.NoError(t, d.Put("objects/ab/cdef", []byte("hello")))

	got, err := d.Get("objects/ab/cdef")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	_, err = os.Stat(filepath.Join(root, "objects", "ab", "cdef"))
	require.NoError(t, err)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	d := New(t.TempDir())
	_, err := d.Get("objects/ab/cdef")
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	exists, err := d.Exists("objects/ab/cdef")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, d.Put("objects/ab/cdef", []byte("x")))

	exists, err = d.Exists("objects/ab/cdef")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListMissingDirReturnsNil(t *testing.T) {
	d := New(t.TempDir())
	names, err := d.List("objects/ab")
	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestListReturnsEntries(t *testing.T) {
	root := t.TempDir()
	d := New(root)

	require.NoError(t, d.Put("objects/ab/one", []byte("1")))
	require.NoError(t, d.Put("objects/ab/two", []byte("2")))

	names, err := d.List("objects/ab")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, names)
}

func TestPutLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	d := New(root)
	require.NoError(t, d.Put("objects/ab/cdef", []byte("x")))

	entries, err := os.ReadDir(filepath.Join(root, "objects", "ab"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cdef", entries[0].Name())
}
