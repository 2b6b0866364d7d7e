// Package revision resolves the short strings a caller types on a command
// line (a full or abbreviated hex hash, HEAD, a branch name, a tag name)
// into the single object id they name, following a fixed ref lookup order
// and a set of type-following rules for reaching a requested object kind.
package revision

import (
	"sort"
	"strings"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objhash"
	"github.com/levijpuckett/wyag/internal/objstore"
	"github.com/levijpuckett/wyag/internal/refstore"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

const minShortHash = 4

// Resolver resolves revision strings against an object store and a ref
// store.
type Resolver struct {
	objects *objstore.Store
	refs    *refstore.Store
}

// New returns a Resolver backed by objects and refs.
func New(objects *objstore.Store, refs *refstore.Store) *Resolver {
	return &Resolver{objects: objects, refs: refs}
}

// refCandidates is the named-ref lookup order tried, in sequence, for a
// name that isn't a hash: the literal path first (so "refs/heads/main"
// works as typed), then the three conventional namespaces.
func refCandidates(name string) []string {
	return []string{
		name,
		"refs/heads/" + name,
		"refs/remotes/" + name,
		"refs/tags/" + name,
	}
}

// Resolve resolves name to the single object id it names. A name that is
// ambiguous (a short hash matching more than one object) is rejected
// rather than silently resolved to the first match.
func (r *Resolver) Resolve(name string) (objhash.Digest, error) {
	if id, err, ok := r.resolveHash(name); ok {
		return id, err
	}

	if name == "HEAD" {
		return r.refs.Resolve("HEAD")
	}

	for _, candidate := range refCandidates(name) {
		id, err := r.refs.Resolve(candidate)
		if err == nil {
			return id, nil
		}
		if !wyagerr.Is(err, wyagerr.CodeNotFound) {
			return "", err
		}
	}

	return "", wyagerr.New(wyagerr.CodeNotFound, name)
}

// resolveHash handles name being a full or abbreviated hex digest. ok is
// false when name isn't hex at all, telling the caller to fall through to
// ref lookup instead.
func (r *Resolver) resolveHash(name string) (objhash.Digest, error, bool) {
	lower := strings.ToLower(name)
	if !isHex(lower) || len(lower) < minShortHash {
		return "", nil, false
	}

	if len(lower) == 40 {
		id, err := objhash.Parse(lower)
		if err != nil {
			return "", nil, false
		}
		exists, err := r.objects.Exists(id)
		if err != nil {
			return "", err, true
		}
		if !exists {
			return "", wyagerr.New(wyagerr.CodeNotFound, name), true
		}
		return id, nil, true
	}

	prefix, rest := lower[:2], lower[2:]
	names, err := r.objects.Fanout(prefix)
	if err != nil {
		return "", err, true
	}

	sort.Strings(names)
	var matches []objhash.Digest
	for _, n := range names {
		if strings.HasPrefix(n, rest) {
			matches = append(matches, objhash.Digest(prefix+n))
		}
	}

	switch len(matches) {
	case 0:
		return "", wyagerr.New(wyagerr.CodeNotFound, name), true
	case 1:
		return matches[0], nil, true
	default:
		return "", wyagerr.New(wyagerr.CodeAmbiguous, name), true
	}
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return len(s) > 0
}

// Follow resolves id to an object of kind, following tag->object and
// commit->tree indirections as needed. Any other kind mismatch is an
// error: a blob can't be "followed" into a tree, for instance.
func (r *Resolver) Follow(id objhash.Digest, kind object.Kind) (objhash.Digest, error) {
	for {
		obj, err := r.objects.Read(id)
		if err != nil {
			return "", err
		}

		if obj.Kind() == kind {
			return id, nil
		}

		switch o := obj.(type) {
		case object.Tag:
			target, ok := o.Object()
			if !ok {
				return "", wyagerr.New(wyagerr.CodeMalformed, string(id)+": tag has no object")
			}
			next, err := objhash.Parse(target)
			if err != nil {
				return "", wyagerr.Wrap(wyagerr.CodeMalformed, string(id), err)
			}
			id = next
		case object.Commit:
			if kind != object.KindTree {
				return "", wyagerr.New(wyagerr.CodeMalformed, string(id)+": commit cannot be followed to "+string(kind))
			}
			treeID, ok := o.Tree()
			if !ok {
				return "", wyagerr.New(wyagerr.CodeMalformed, string(id)+": commit has no tree")
			}
			next, err := objhash.Parse(treeID)
			if err != nil {
				return "", wyagerr.Wrap(wyagerr.CodeMalformed, string(id), err)
			}
			id = next
		default:
			return "", wyagerr.New(wyagerr.CodeMalformed, string(id)+": cannot follow "+string(obj.Kind())+" to "+string(kind))
		}
	}
}
