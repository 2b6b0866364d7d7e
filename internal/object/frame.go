package object

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Frame wraps payload in the on-disk header used for every object, before
// compression: "<kind> <len>\0<payload>".
func Frame(kind Kind, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	buf := make([]byte, 0, len(header)+len(payload))
	buf = append(buf, header...)
	buf = append(buf, payload...)
	return buf
}

// Unframe splits raw (the inflated, already-decompressed bytes of an object)
// into its kind and payload, validating that the declared length matches
// the actual payload length.
func Unframe(raw []byte) (Kind, []byte, error) {
	sp := bytes.IndexByte(raw, ' ')
	if sp < 0 {
		return "", nil, wyagerr.New(wyagerr.CodeMalformed, "missing header space")
	}

	nul := bytes.IndexByte(raw[sp+1:], 0)
	if nul < 0 {
		return "", nil, wyagerr.New(wyagerr.CodeMalformed, "missing header NUL")
	}
	nul += sp + 1

	kind, err := ParseKind(string(raw[:sp]))
	if err != nil {
		return "", nil, err
	}

	size, err := strconv.Atoi(string(raw[sp+1 : nul]))
	if err != nil {
		return "", nil, wyagerr.Wrap(wyagerr.CodeMalformed, "bad length field", err)
	}

	payload := raw[nul+1:]
	if size != len(payload) {
		return "", nil, wyagerr.New(wyagerr.CodeMalformed, fmt.Sprintf("declared length %d, got %d", size, len(payload)))
	}

	return kind, payload, nil
}
