// Package gitpath computes and, where asked, materializes filesystem paths
// inside a repository's metadata directory. It keeps path arithmetic out
// of every other package, the way a storage path mapper keeps path
// formatting separate from the object it names.
package gitpath

import (
	"os"
	"path/filepath"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Mapper computes paths under a single metadata directory ("gitdir").
// It is purely computational except when Dir or File is asked to create
// missing directories.
type Mapper struct {
	gitdir string
}

// New returns a Mapper rooted at gitdir, the absolute path to a
// repository's metadata directory (conventionally "<worktree>/.git").
func New(gitdir string) Mapper {
	return Mapper{gitdir: gitdir}
}

// Root returns the metadata directory itself.
func (m Mapper) Root() string { return m.gitdir }

// Path joins parts under the metadata directory. It performs no filesystem
// access.
func (m Mapper) Path(parts ...string) string {
	return filepath.Join(append([]string{m.gitdir}, parts...)...)
}

// Dir asserts that Path(parts...) is a directory if it exists. When create
// is true, it creates the directory (and any missing parents) first. It
// returns the empty string, without error, if the path does not exist and
// create is false.
func (m Mapper) Dir(create bool, parts ...string) (string, error) {
	p := m.Path(parts...)

	info, err := os.Stat(p)
	if err == nil {
		if !info.IsDir() {
			return "", wyagerr.New(wyagerr.CodeIO, "not a directory: "+p)
		}
		return p, nil
	}
	if !os.IsNotExist(err) {
		return "", wyagerr.Wrap(wyagerr.CodeIO, p, err)
	}
	if !create {
		return "", nil
	}
	if err := os.MkdirAll(p, 0o777); err != nil {
		return "", wyagerr.Wrap(wyagerr.CodeIO, p, err)
	}
	return p, nil
}

// File ensures the parent directory of Path(parts...) exists (creating it
// when create is true) and returns the full file path. When create is
// false and the parent directory is absent, it returns the empty string
// without error, mirroring Dir.
func (m Mapper) File(create bool, parts ...string) (string, error) {
	if len(parts) == 0 {
		return m.gitdir, nil
	}
	parentPath, err := m.Dir(create, parts[:len(parts)-1]...)
	if err != nil {
		return "", err
	}
	if parentPath == "" {
		return "", nil
	}
	return m.Path(parts...), nil
}
