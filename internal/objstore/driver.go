// Package objstore is the content-addressed object store: it reads an
// object by id, writes an object (computing its id as a side effect), and
// maintains the invariant that the id of an object on disk always equals
// the SHA-1 of its framed, inflated content.
package objstore

// Driver is the storage seam beneath the object store, pared down to the
// handful of operations a content-addressed object store needs: get/put
// of whole small byte blobs, existence checks, and a directory listing
// used for short-hash fan-out lookups. Only one
// Driver ships
// (filedriver, a local filesystem), since packed or remote object stores
// are out of scope for this module, but the seam is kept because nothing
// in this domain should hardcode os.* calls throughout.
type Driver interface {
	// Get retrieves the content stored at path.
	Get(path string) ([]byte, error)

	// Put stores content at path, replacing anything already there. A
	// Driver implementation must make this appear atomic to readers (no
	// partial writes observable).
	Put(path string, content []byte) error

	// Exists reports whether path names a regular file.
	Exists(path string) (bool, error)

	// List returns the direct children of path (file and directory
	// names, not full paths), in no particular order. It returns an
	// empty slice, not an error, if path does not exist.
	List(path string) ([]string, error)
}
