package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/refstore"
)

// ShowRefCmd prints every ref under refs/ with its resolved id.
var ShowRefCmd = &cobra.Command{
	Use:   "show-ref",
	Short: "list all refs and their resolved ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := discover()
		if err != nil {
			return err
		}

		entries, err := e.refs.List("")
		if err != nil {
			return err
		}

		for _, line := range flattenRefs("refs", entries) {
			fmt.Println(line)
		}
		return nil
	},
}

func flattenRefs(prefix string, entries []refstore.Entry) []string {
	var lines []string
	for _, entry := range entries {
		full := path.Join(prefix, entry.Name)
		if entry.Children != nil {
			lines = append(lines, flattenRefs(full, entry.Children)...)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", entry.ID, full))
	}
	return lines
}
