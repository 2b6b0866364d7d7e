package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/object"
)

var revParseKind string

// RevParseCmd resolves a revision string to its object id, optionally
// following it to a requested object kind.
var RevParseCmd = &cobra.Command{
	Use:   "rev-parse <name>",
	Short: "resolve a revision to an object id",
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

		if revParseKind != "" {
			kind, err := object.ParseKind(revParseKind)
			if err != nil {
				return err
			}
			id, err = e.resolver.Follow(id, kind)
			if err != nil {
				return err
			}
		}

		fmt.Println(id)
		return nil
	},
}
