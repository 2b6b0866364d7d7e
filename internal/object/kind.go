// Package object implements the codec for the four object kinds a wyag
// repository stores: blob, tree, commit, and tag. It wraps every payload
// in the "<kind> <len>\0<payload>" frame before hashing and compression,
// and exhaustively dispatches on the closed Kind enum rather than an
// interface hierarchy.
package object

import "github.com/levijpuckett/wyag/internal/wyagerr"

// Kind is the closed set of object kinds this store understands.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
	KindTag    Kind = "tag"
)

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBlob, KindTree, KindCommit, KindTag:
		return true
	default:
		return false
	}
}

// ParseKind validates s as a Kind, failing with CodeUnknownKind otherwise.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", wyagerr.New(wyagerr.CodeUnknownKind, s)
	}
	return k, nil
}

// Object is any of the four decoded object payloads. Implementations are
// Blob, Tree, Commit, and Tag (the last two both wrap a KVLM).
type Object interface {
	Kind() Kind
	Serialize() []byte
}
