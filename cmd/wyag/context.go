package main

import (
	"github.com/levijpuckett/wyag/internal/objstore"
	"github.com/levijpuckett/wyag/internal/refstore"
	"github.com/levijpuckett/wyag/internal/repo"
	"github.com/levijpuckett/wyag/internal/revision"
)

// env bundles the handles every command but init needs: the opened
// repository, its object store, its ref store, and a revision resolver
// over both.
type env struct {
	repo     *repo.Repo
	objects  *objstore.Store
	refs     *refstore.Store
	resolver *revision.Resolver
}

// discover opens the repository containing the current directory and
// wires up its stores. Every subcommand except init calls this first.
func discover() (*env, error) {
	r, err := repo.Discover(".")
	if err != nil {
		return nil, err
	}

	objects := objstore.Open(r.GitDir)
	refs := refstore.New(r.Paths)
	resolver := revision.New(objects, refs)

	return &env{repo: r, objects: objects, refs: refs, resolver: resolver}, nil
}
