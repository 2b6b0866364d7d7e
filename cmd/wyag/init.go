package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/logctx"
	"github.com/levijpuckett/wyag/internal/repo"
)

// InitCmd creates a new repository at the given path (".", by default).
var InitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "create a new, empty repository",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		ctx := rootContext("init")
		r, err := repo.Init(path)
		if err != nil {
			return err
		}

		logctx.GetLogger(ctx).Infof("initialized empty repository in %s", r.GitDir)
		fmt.Printf("Initialized empty wyag repository in %s\n", r.GitDir)
		return nil
	},
}
