// Package refstore implements the symbolic reference layer: small text
// files under the metadata directory that either hold a 40-character hex
// hash or indirect to another ref via "ref: <path>\n". HEAD, refs/heads/*,
// refs/tags/*, and refs/remotes/* are all refs in this sense.
package refstore

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/levijpuckett/wyag/internal/gitpath"
	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// maxIndirection bounds ref-chain following so a cyclic or pathologically
// deep chain fails fast instead of recursing forever, a hardening
// against corrupt or cyclic repository state.
const maxIndirection = 8

const headIndirectPrefix = "ref: "

// Store resolves, lists, and creates refs under a repository's metadata
// directory.
type Store struct {
	paths gitpath.Mapper
}

// New returns a Store rooted at paths.
func New(paths gitpath.Mapper) *Store {
	return &Store{paths: paths}
}

// Resolve follows refPath (relative to the metadata directory, e.g.
// "HEAD" or "refs/heads/main") through any chain of indirections and
// returns the hex hash it ultimately names. The chain is followed
// iteratively and capped at maxIndirection; a longer chain is reported as
// malformed rather than risking unbounded recursion on a corrupt or
// cyclic repository.
func (s *Store) Resolve(refPath string) (objhash.Digest, error) {
	current := refPath

	for i := 0; i < maxIndirection; i++ {
		content, err := s.readRef(current)
		if err != nil {
			return "", err
		}

		if rest, ok := strings.CutPrefix(content, headIndirectPrefix); ok {
			current = rest
			continue
		}

		return objhash.Parse(content)
	}

	return "", wyagerr.New(wyagerr.CodeMalformed, refPath+": reference chain too deep (possible cycle)")
}

// readRef reads refPath and returns its content with the trailing newline
// stripped.
func (s *Store) readRef(refPath string) (string, error) {
	full := s.paths.Path(refPath)
	b, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", wyagerr.New(wyagerr.CodeNotFound, refPath)
		}
		return "", wyagerr.Wrap(wyagerr.CodeIO, refPath, err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// Create writes id to the ref named by relPath (e.g. "heads/main" or
// "tags/v1", relative to refs/), creating parent directories as needed.
func (s *Store) Create(relPath string, id objhash.Digest) error {
	parts := append([]string{"refs"}, strings.Split(relPath, "/")...)
	full, err := s.paths.File(true, parts...)
	if err != nil {
		return err
	}
	return os.WriteFile(full, []byte(id.String()+"\n"), 0o666)
}

// CreateIndirect writes an indirect ref (e.g. HEAD pointing at a branch)
// at refPath (relative to the metadata directory), pointing at target
// (relative to the metadata directory, e.g. "refs/heads/main").
func (s *Store) CreateIndirect(refPath, target string) error {
	parts := strings.Split(refPath, "/")
	full, err := s.paths.File(true, parts...)
	if err != nil {
		return err
	}
	return os.WriteFile(full, []byte(headIndirectPrefix+target+"\n"), 0o666)
}

// Attached reports whether HEAD indirects to a branch under refs/heads,
// returning that branch's name. A detached HEAD holding a raw hash
// returns ok=false.
func (s *Store) Attached() (branch string, ok bool) {
	content, err := s.readRef("HEAD")
	if err != nil {
		return "", false
	}
	rest, isRef := strings.CutPrefix(content, headIndirectPrefix)
	if !isRef {
		return "", false
	}
	name, isBranch := strings.CutPrefix(rest, "refs/heads/")
	if !isBranch {
		return "", false
	}
	return name, true
}

// Entry is one node of a List result: either a leaf (ID set) or a
// directory (Children set).
type Entry struct {
	Name     string
	ID       objhash.Digest
	Children []Entry
}

// List walks the refs directory (or a subdirectory of it, e.g. "tags")
// in lexicographic order, resolving each leaf to its hash.
func (s *Store) List(subdir string) ([]Entry, error) {
	rel := path.Join("refs", subdir)
	return s.listDir(rel)
}

func (s *Store) listDir(rel string) ([]Entry, error) {
	full := s.paths.Path(rel)
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, wyagerr.Wrap(wyagerr.CodeIO, rel, err)
	}

	sort.Slice(dirEntries, func(i, j int) bool { return dirEntries[i].Name() < dirEntries[j].Name() })

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		childRel := path.Join(rel, de.Name())
		if de.IsDir() {
			children, err := s.listDir(childRel)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Name: de.Name(), Children: children})
			continue
		}

		id, err := s.Resolve(childRel)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: de.Name(), ID: id})
	}
	return entries, nil
}
