package object

import (
	"bytes"

	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// TreeEntry is a single entry in a tree object: a mode, a path component,
// and the id of the child object it names.
type TreeEntry struct {
	Mode string // 5 or 6 ASCII digits, e.g. "100644" or "40000"
	Path string
	ID   objhash.Digest
}

// Tree is an ordered sequence of entries, in file order.
type Tree struct {
	Entries []TreeEntry
}

// Kind implements Object.
func (Tree) Kind() Kind { return KindTree }

// Serialize implements Object. The on-disk form is the concatenation of
// entries with no separators: "mode SP path NUL digest20" each.
// tree_serialize ∘ tree_parse is the identity on any valid tree payload.
func (t Tree) Serialize() []byte {
	var buf bytes.Buffer
	for _, e := range t.Entries {
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		// ID.Bytes() cannot fail here: entries are only ever constructed
		// from a valid Digest (ParseTree validates it, and callers build
		// entries from objhash.Sum results elsewhere).
		b, _ := e.ID.Bytes()
		buf.Write(b)
	}
	return buf.Bytes()
}

// ParseTree decodes a tree payload: repeated "mode SP path NUL digest20"
// entries with no separators, consumed until the payload is exhausted.
func ParseTree(payload []byte) (Tree, error) {
	var entries []TreeEntry
	pos := 0
	n := len(payload)

	for pos < n {
		sp := bytes.IndexByte(payload[pos:], ' ')
		if sp < 0 {
			return Tree{}, wyagerr.New(wyagerr.CodeMalformed, "tree: missing mode separator")
		}
		sp += pos

		mode := string(payload[pos:sp])
		if len(mode) != 5 && len(mode) != 6 {
			return Tree{}, wyagerr.New(wyagerr.CodeMalformed, "tree: mode must be 5 or 6 digits")
		}

		nul := bytes.IndexByte(payload[sp+1:], 0)
		if nul < 0 {
			return Tree{}, wyagerr.New(wyagerr.CodeMalformed, "tree: missing path terminator")
		}
		nul += sp + 1

		path := string(payload[sp+1 : nul])
		if path == "" {
			return Tree{}, wyagerr.New(wyagerr.CodeMalformed, "tree: empty path")
		}

		if nul+1+20 > n {
			return Tree{}, wyagerr.New(wyagerr.CodeMalformed, "tree: truncated digest")
		}
		id, err := objhash.FromBytes(payload[nul+1 : nul+21])
		if err != nil {
			return Tree{}, wyagerr.Wrap(wyagerr.CodeMalformed, "tree: bad digest", err)
		}

		entries = append(entries, TreeEntry{Mode: mode, Path: path, ID: id})
		pos = nul + 21
	}

	return Tree{Entries: entries}, nil
}
