// Package checkout implements the tree walker and checkout materializer:
// recursing a tree object and reading its children through the object
// store, either to list them or to write them out to a destination
// directory.
package checkout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/objstore"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// maxDepth bounds tree recursion the same way refstore bounds ref
// indirection: a repository's own shape should never need this many
// levels, so hitting it means something is wrong rather than merely deep.
const maxDepth = 256

// Entry is one listed tree entry, with its path prefixed by any parent
// directories walked to reach it.
type Entry struct {
	Mode string
	Kind object.Kind
	ID   objhash.Digest
	Path string
}

// Walk lists every entry reachable from the tree named by id. When
// recurse is true, subtrees are descended into (with their entries'
// paths prefixed by the subtree's path) instead of being emitted as a
// single tree entry.
func Walk(store *objstore.Store, id objhash.Digest, recurse bool) ([]Entry, error) {
	return walk(store, id, "", recurse, 0)
}

func walk(store *objstore.Store, id objhash.Digest, prefix string, recurse bool, depth int) ([]Entry, error) {
	if depth > maxDepth {
		return nil, wyagerr.New(wyagerr.CodeMalformed, "tree recursion exceeded maximum depth")
	}

	obj, err := store.Read(id)
	if err != nil {
		return nil, err
	}
	tree, ok := obj.(object.Tree)
	if !ok {
		return nil, wyagerr.New(wyagerr.CodeMalformed, string(id)+": not a tree")
	}

	var entries []Entry
	for _, te := range tree.Entries {
		childPath := filepath.Join(prefix, te.Path)

		child, err := store.Read(te.ID)
		if err != nil {
			return nil, err
		}

		if child.Kind() == object.KindTree && recurse {
			sub, err := walk(store, te.ID, childPath, recurse, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
			continue
		}

		entries = append(entries, Entry{Mode: te.Mode, Kind: child.Kind(), ID: te.ID, Path: childPath})
	}
	return entries, nil
}

// Format renders an entry the way "ls-tree" prints it: zero-padded mode,
// kind, id, a tab, then the path.
func (e Entry) Format() string {
	return fmt.Sprintf("%06s %s %s\t%s", e.Mode, e.Kind, e.ID, e.Path)
}

// Checkout materializes tree (named by id) into dest. dest must not exist
// or must be an empty directory; it is created if absent. Every blob
// entry is written as a file; every subtree becomes a subdirectory and is
// recursed into. Any other kind inside a tree is malformed.
func Checkout(store *objstore.Store, id objhash.Digest, dest string) error {
	if err := ensureEmptyDir(dest); err != nil {
		return err
	}
	return checkoutInto(store, id, dest, 0)
}

func ensureEmptyDir(dest string) error {
	info, err := os.Stat(dest)
	if err == nil {
		if !info.IsDir() {
			return wyagerr.New(wyagerr.CodeIO, dest+" is not a directory")
		}
		entries, err := os.ReadDir(dest)
		if err != nil {
			return wyagerr.Wrap(wyagerr.CodeIO, dest, err)
		}
		if len(entries) > 0 {
			return wyagerr.New(wyagerr.CodeNotEmpty, dest)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return wyagerr.Wrap(wyagerr.CodeIO, dest, err)
	}
	if err := os.MkdirAll(dest, 0o777); err != nil {
		return wyagerr.Wrap(wyagerr.CodeIO, dest, err)
	}
	return nil
}

func checkoutInto(store *objstore.Store, id objhash.Digest, dest string, depth int) error {
	if depth > maxDepth {
		return wyagerr.New(wyagerr.CodeMalformed, "tree recursion exceeded maximum depth")
	}

	obj, err := store.Read(id)
	if err != nil {
		return err
	}
	tree, ok := obj.(object.Tree)
	if !ok {
		return wyagerr.New(wyagerr.CodeMalformed, string(id)+": not a tree")
	}

	for _, te := range tree.Entries {
		child, err := store.Read(te.ID)
		if err != nil {
			return err
		}

		childPath := filepath.Join(dest, te.Path)

		switch c := child.(type) {
		case object.Tree:
			if err := os.MkdirAll(childPath, 0o777); err != nil {
				return wyagerr.Wrap(wyagerr.CodeIO, childPath, err)
			}
			if err := checkoutInto(store, te.ID, childPath, depth+1); err != nil {
				return err
			}
		case object.Blob:
			if err := os.WriteFile(childPath, c.Data, 0o666); err != nil {
				return wyagerr.Wrap(wyagerr.CodeIO, childPath, err)
			}
		default:
			return wyagerr.New(wyagerr.CodeMalformed, string(te.ID)+": unexpected "+string(child.Kind())+" inside tree")
		}
	}
	return nil
}
