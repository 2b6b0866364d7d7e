package object

import (
	"bytes"
	"strings"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// KVLM is a "key-value list with message": the header-plus-body format
// shared by commit and tag payloads. Key order is the order of first
// appearance; a key that appears more than once (e.g. "parent" on a merge
// commit) accumulates an ordered sequence of values instead of being
// overwritten.
//
// Parsing and serialization are both iterative, not recursive, so that a
// pathological header (thousands of keys) cannot grow the call stack.
type KVLM struct {
	order  []string
	values map[string][]string

	// Message is the payload after the header's terminating blank line.
	Message []byte
}

// New returns an empty KVLM with no keys and an empty message.
func New() *KVLM {
	return &KVLM{values: make(map[string][]string)}
}

// Keys returns the header keys in order of first appearance. The message
// key is never included.
func (kv *KVLM) Keys() []string {
	return append([]string(nil), kv.order...)
}

// All returns every value stored under key, in file order. It returns nil
// if key was never set.
func (kv *KVLM) All(key string) []string {
	return kv.values[key]
}

// First returns the first value stored under key and whether key was set
// at all. Most header keys (e.g. "tree", "author") only ever have one
// value, so this is the common accessor.
func (kv *KVLM) First(key string) (string, bool) {
	vs := kv.values[key]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Add appends value under key, upgrading key to a multi-value sequence if
// it already had one.
func (kv *KVLM) Add(key, value string) {
	if _, seen := kv.values[key]; !seen {
		kv.order = append(kv.order, key)
	}
	kv.values[key] = append(kv.values[key], value)
}

// Parse decodes a KVLM header-plus-message block. It fails with
// CodeMalformed if the blank-line/message boundary is missing or a value's
// continuation lines are unterminated.
func Parse(raw []byte) (*KVLM, error) {
	kv := New()
	pos := 0
	n := len(raw)

	for {
		if pos > n {
			return nil, wyagerr.New(wyagerr.CodeMalformed, "kvlm: truncated header")
		}

		sp := bytes.IndexByte(raw[pos:], ' ')
		nl := bytes.IndexByte(raw[pos:], '\n')
		spAbs, nlAbs := -1, -1
		if sp >= 0 {
			spAbs = pos + sp
		}
		if nl >= 0 {
			nlAbs = pos + nl
		}

		if spAbs < 0 || (nlAbs >= 0 && nlAbs < spAbs) {
			if nlAbs != pos {
				return nil, wyagerr.New(wyagerr.CodeMalformed, "kvlm: expected blank line before message")
			}
			kv.Message = raw[pos+1:]
			return kv, nil
		}

		key := string(raw[pos:spAbs])
		if key == "" {
			return nil, wyagerr.New(wyagerr.CodeMalformed, "kvlm: empty key")
		}

		end := spAbs
		for {
			idx := bytes.IndexByte(raw[end+1:], '\n')
			if idx < 0 {
				return nil, wyagerr.New(wyagerr.CodeMalformed, "kvlm: unterminated value")
			}
			end = end + 1 + idx
			if end+1 >= n || raw[end+1] != ' ' {
				break
			}
		}

		value := bytes.ReplaceAll(raw[spAbs+1:end], []byte("\n "), []byte("\n"))
		kv.Add(key, string(value))
		pos = end + 1
	}
}

// Serialize re-encodes the KVLM, re-continuing embedded newlines in values
// and terminating the header with a blank line before the message.
// serialize ∘ parse is the identity on any validly framed input.
func (kv *KVLM) Serialize() []byte {
	var buf bytes.Buffer
	for _, key := range kv.order {
		for _, v := range kv.values[key] {
			buf.WriteString(key)
			buf.WriteByte(' ')
			buf.WriteString(strings.ReplaceAll(v, "\n", "\n "))
			buf.WriteByte('\n')
		}
	}
	buf.WriteByte('\n')
	buf.Write(kv.Message)
	return buf.Bytes()
}
