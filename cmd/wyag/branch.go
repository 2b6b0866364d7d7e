package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BranchCmd lists branches (marking the one HEAD is attached to), or
// creates a new branch pointing at <startpoint> (HEAD by default).
var BranchCmd = &cobra.Command{
	Use:   "branch [name] [startpoint]",
	Short: "list branches, or create one",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := discover()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			attached, _ := e.refs.Attached()

			entries, err := e.refs.List("heads")
			if err != nil {
				return err
			}
			for _, entry := range entries {
				if entry.Name == attached {
					fmt.Printf("* %s\n", entry.Name)
					continue
				}
				fmt.Printf("  %s\n", entry.Name)
			}
			return nil
		}

		name := args[0]
		startpoint := "HEAD"
		if len(args) == 2 {
			startpoint = args[1]
		}

		id, err := e.resolver.Resolve(startpoint)
		if err != nil {
			return err
		}
		return e.refs.Create("heads/"+name, id)
	},
}
