package object

// Blob is an opaque byte sequence with no internal structure.
type Blob struct {
	Data []byte
}

// Kind implements Object.
func (Blob) Kind() Kind { return KindBlob }

// Serialize implements Object. A blob's serialization is its raw bytes,
// unchanged, the identity codec.
func (b Blob) Serialize() []byte { return b.Data }

// ParseBlob implements the identity codec's decode half.
func ParseBlob(payload []byte) Blob {
	return Blob{Data: payload}
}
