// Package repo implements the repository handle: discovery of an existing
// repository by walking upward from a starting directory, explicit
// initialization of a new one, and the versioned config that gates both.
package repo

import (
	"os"
	"path/filepath"

	"github.com/levijpuckett/wyag/internal/gitpath"
	"github.com/levijpuckett/wyag/internal/wyagerr"
)

// Repo is an opened repository handle: an absolute worktree path, an
// absolute metadata-directory path, and its parsed config. A Repo is
// never mutated after construction; Discover and Init are the only ways
// to produce one.
type Repo struct {
	Worktree string
	GitDir   string
	Config   *Config
	Paths    gitpath.Mapper
}

// Discover walks upward from start (inclusive) until it finds a directory
// containing a ".git" metadata directory, then opens it as a Repo. It
// fails with CodeNotARepository if the filesystem root is reached first.
func Discover(start string) (*Repo, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeIO, start, err)
	}

	dir := abs
	for {
		gitdir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitdir); err == nil && info.IsDir() {
			return open(dir, gitdir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, wyagerr.New(wyagerr.CodeNotARepository, start)
		}
		dir = parent
	}
}

func open(worktree, gitdir string) (*Repo, error) {
	paths := gitpath.New(gitdir)

	configPath, err := paths.File(false, "config")
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return nil, wyagerr.New(wyagerr.CodeConfigMissing, filepath.Join(gitdir, "config"))
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return &Repo{Worktree: worktree, GitDir: gitdir, Config: cfg, Paths: paths}, nil
}

// Init lays out a new repository at worktree: the .git metadata directory
// with objects/, refs/heads/, refs/tags/, branches/, HEAD, description,
// and config. worktree must not exist or must be an empty directory.
func Init(worktree string) (*Repo, error) {
	abs, err := filepath.Abs(worktree)
	if err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeIO, worktree, err)
	}

	if info, err := os.Stat(abs); err == nil {
		if !info.IsDir() {
			return nil, wyagerr.New(wyagerr.CodeIO, abs+" is not a directory")
		}
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, wyagerr.Wrap(wyagerr.CodeIO, abs, err)
		}
		if len(entries) > 0 {
			return nil, wyagerr.New(wyagerr.CodeNotEmpty, abs)
		}
	} else if os.IsNotExist(err) {
		if err := os.MkdirAll(abs, 0o777); err != nil {
			return nil, wyagerr.Wrap(wyagerr.CodeIO, abs, err)
		}
	} else {
		return nil, wyagerr.Wrap(wyagerr.CodeIO, abs, err)
	}

	gitdir := filepath.Join(abs, ".git")
	paths := gitpath.New(gitdir)

	for _, d := range [][]string{{"branches"}, {"objects"}, {"refs", "tags"}, {"refs", "heads"}} {
		if _, err := paths.Dir(true, d...); err != nil {
			return nil, err
		}
	}

	descPath, err := paths.File(true, "description")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(descPath, []byte("Unnamed repository; edit this file 'description' to name the repository.\n"), 0o666); err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeIO, descPath, err)
	}

	headPath, err := paths.File(true, "HEAD")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/main\n"), 0o666); err != nil {
		return nil, wyagerr.Wrap(wyagerr.CodeIO, headPath, err)
	}

	configPath, err := paths.File(true, "config")
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		return nil, err
	}

	return &Repo{Worktree: abs, GitDir: gitdir, Config: cfg, Paths: paths}, nil
}
