package objstore

import (
	"bytes"
	"compress/zlib"
	"io"
	"path"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Store is the content-addressed object store, layered on top of a Driver
// that only knows about whole-file bytes. It owns framing, compression,
// and the hashing that gives an object its id.
type Store struct {
	driver Driver
}

// New returns a Store backed by driver.
func New(driver Driver) *Store {
	return &Store{driver: driver}
}

func objectPath(id objhash.Digest) string {
	return path.Join("objects", id.Prefix(), id.Suffix())
}

// Read resolves id to its on-disk path, inflates it, validates the frame,
// and dispatches to the matching decoder.
func (s *Store) Read(id objhash.Digest) (object.Object, error) {
	compressed, err := s.driver.Get(objectPath(id))
	if err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeMalformed, string(id), err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeMalformed, string(id), err)
	}

	kind, payload, err := object.Unframe(raw)
	if err != nil {
		return nil, err
	}

	return object.Decode(kind, payload)
}

// Exists reports whether an object with id is present.
func (s *Store) Exists(id objhash.Digest) (bool, error) {
	return s.driver.Exists(objectPath(id))
}

// Write serializes obj, frames it, computes its SHA-1 id, and, unless
// actuallyWrite is false, compresses and stores it. Passing
// actuallyWrite=false computes the id without touching the filesystem,
// matching hash-object's behavior without -w.
//
// Writing an object whose id already exists on disk is a no-op beyond the
// hash computation: objects are immutable and content-addressed, so a
// second write of identical content can never change anything.
func (s *Store) Write(obj object.Object, actuallyWrite bool) (objhash.Digest, error) {
	payload := obj.Serialize()
	framed := object.Frame(obj.Kind(), payload)
	id := objhash.Sum(framed)

	if !actuallyWrite {
		return id, nil
	}

	exists, err := s.Exists(id)
	if err != nil {
		return "", err
	}
	if exists {
		return id, nil
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(framed); err != nil {
		return "", wyagerr.Wrap(wyagerr.CodeIO, string(id), err)
	}
	if err := zw.Close(); err != nil {
		return "", wyagerr.Wrap(wyagerr.CodeIO, string(id), err)
	}

	if err := s.driver.Put(objectPath(id), buf.Bytes()); err != nil {
		return "", err
	}
	return id, nil
}

// Fanout lists the filenames under the two-character fan-out directory
// for prefix (the first two hex characters of a hash). It is used by the
// revision resolver for short-hash matching.
func (s *Store) Fanout(prefix string) ([]string, error) {
	return s.driver.List(path.Join("objects", prefix))
}
