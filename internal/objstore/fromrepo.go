package objstore

import "github.com/levijpuckett/wyag/internal/objstore/filedriver"

// Open returns a Store backed by the local filesystem, rooted at gitdir
// (a repository's metadata directory). This is the only Driver this
// module ships; see Driver's doc comment.
func Open(gitdir string) *Store {
	return New(filedriver.New(gitdir))
}
