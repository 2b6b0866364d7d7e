// Package filedriver is the local-filesystem implementation of
// objstore.Driver, the only backend this module ships (packed or remote
// object stores are out of scope). Writes land atomically via a
// temp-file-then-rename.
package filedriver

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/levijpuckett/wyag/internal/uuid"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Driver roots every path at a base directory.
type Driver struct {
	root string
}

// New returns a Driver rooted at root. root must already exist.
func New(root string) *Driver {
	return &Driver{root: root}
}

func (d *Driver) full(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// Get implements objstore.Driver.
func (d *Driver) Get(path string) ([]byte, error) {
	b, err := os.ReadFile(d.full(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, wyagerr.New(wyagerr.CodeNotFound, path)
		}
		return nil, wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}
	return b, nil
}

// Put implements objstore.Driver. It writes to a sibling temp file and
// renames it into place, so a reader never observes a partial write and a
// crash mid-write never corrupts an existing object.
func (d *Driver) Put(path string, content []byte) error {
	full := d.full(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o777); err != nil {
		return wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}

	tmp := full + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, content, 0o666); err != nil {
		return wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}

	if err := os.Rename(tmp, full); err != nil {
		os.Remove(tmp)
		return wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}
	return nil
}

// Exists implements objstore.Driver.
func (d *Driver) Exists(path string) (bool, error) {
	info, err := os.Stat(d.full(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}
	return !info.IsDir(), nil
}

// List implements objstore.Driver.
func (d *Driver) List(path string) ([]string, error) {
	entries, err := os.ReadDir(d.full(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, wyagerr.Wrap(wyagerr.CodeIO, path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
