package object

import "github.com/levijpuckett/wyag/internal/wyagerr"

// Decode dispatches on kind to the matching parser. The dispatch is
// exhaustive over the closed Kind enum: there is no default case that
// silently accepts an unrecognized kind, because ParseKind already
// rejected anything outside the four at frame-unwrap time.
func Decode(kind Kind, payload []byte) (Object, error) {
	switch kind {
	case KindBlob:
		return ParseBlob(payload), nil
	case KindTree:
		return ParseTree(payload)
	case KindCommit:
		return ParseCommit(payload)
	case KindTag:
		return ParseTag(payload)
	default:
		return nil, wyagerr.New(wyagerr.CodeUnknownKind, string(kind))
	}
}
