package main

import (
	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/checkout"
	"github.com/levijpuckett/wyag/internal/object"
)

// CheckoutCmd materializes a commit or tree's files into a destination
// directory, which must not exist or must be empty.
var CheckoutCmd = &cobra.Command{
	Use:   "checkout <commit-or-tree> <dest>",
	Short: "materialize a tree into a directory",
	Args:  cobra.ExactArgs(2),
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

		return checkout.Checkout(e.objects, id, args[1])
	},
}
