package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objhash"
)

// LogCmd emits the commit ancestry reachable from the given commit (HEAD
// by default) as graphviz digraph text. Formatting the output is
// deliberately left to this one-off emitter rather than the core object
// model: the core only needs to read commits and follow parent links.
var LogCmd = &cobra.Command{
	Use:   "log [commit]",
	Short: "print the commit history as a graphviz digraph",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "HEAD"
		if len(args) == 1 {
			name = args[0]
		}

		e, err := discover()
		if err != nil {
			return err
		}

		start, err := e.resolver.Resolve(name)
		if err != nil {
			return err
		}
		start, err = e.resolver.Follow(start, object.KindCommit)
		if err != nil {
			return err
		}

		fmt.Println("digraph wyaglog{")
		fmt.Println("  node [shape=rect]")

		visited := make(map[objhash.Digest]bool)
		if err := emitLog(e, start, visited); err != nil {
			return err
		}

		fmt.Println("}")
		return nil
	},
}

// emitLog walks commit parents, deduplicating by id so a diamond history
// is visited once per commit rather than once per path to it.
func emitLog(e *env, id objhash.Digest, visited map[objhash.Digest]bool) error {
	if visited[id] {
		return nil
	}
	visited[id] = true

	obj, err := e.objects.Read(id)
	if err != nil {
		return err
	}
	commit, ok := obj.(object.Commit)
	if !ok {
		return fmt.Errorf("%s is not a commit", id)
	}

	short := id.String()[:8]
	fmt.Printf("  c_%s [label=%q]\n", short, firstLine(commit.KVLM.Message))

	for _, parent := range commit.Parents() {
		parentID, err := objhash.Parse(parent)
		if err != nil {
			return err
		}
		fmt.Printf("  c_%s -> c_%s\n", short, parentID.String()[:8])
		if err := emitLog(e, parentID, visited); err != nil {
			return err
		}
	}
	return nil
}

func firstLine(message []byte) string {
	for i, b := range message {
		if b == '\n' {
			return string(message[:i])
		}
	}
	return string(message)
}
