package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/checkout"
	"github.com/levijpuckett/wyag/internal/object"
)

var lsTreeRecurse bool

// LsTreeCmd lists the entries of a tree (or the tree of a commit).
var LsTreeCmd = &cobra.Command{
	Use:   "ls-tree <tree-ish>",
	Short: "list the entries of a tree object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := discover()
		if err != nil {
			return err
		}

		id, err := e.resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		id, err = e.resolver.Follow(id, object.KindTree)
		if err != nil {
			return err
		}

		entries, err := checkout.Walk(e.objects, id, lsTreeRecurse)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Println(entry.Format())
		}
		return nil
	},
}
