package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/logctx"
	"github.com/levijpuckett/wyag/version"
)

var showVersion bool

func init() {
	RootCmd.AddCommand(InitCmd)
	RootCmd.AddCommand(CatFileCmd)
	RootCmd.AddCommand(HashObjectCmd)
	RootCmd.AddCommand(LogCmd)
	RootCmd.AddCommand(LsTreeCmd)
	RootCmd.AddCommand(CheckoutCmd)
	RootCmd.AddCommand(ShowRefCmd)
	RootCmd.AddCommand(TagCmd)
	RootCmd.AddCommand(BranchCmd)
	RootCmd.AddCommand(RevParseCmd)

	LsTreeCmd.Flags().BoolVarP(&lsTreeRecurse, "recurse", "r", false, "recurse into subtrees")
	HashObjectCmd.Flags().StringVarP(&hashObjectKind, "type", "t", "blob", "object kind")
	HashObjectCmd.Flags().BoolVarP(&hashObjectWrite, "write", "w", false, "write the object to the store")
	CatFileCmd.Flags().BoolVarP(&catFileType, "type", "t", false, "print the object's kind instead of its content")
	TagCmd.Flags().BoolVarP(&tagAnnotate, "annotate", "a", false, "create an annotated tag")
	TagCmd.Flags().StringVarP(&tagMessage, "message", "m", "", "annotated tag message")
	RevParseCmd.Flags().StringVar(&revParseKind, "wyag-type", "", "follow the resolved id to this object kind")
	RootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show the version and exit")
}

// RootCmd is the main command for the wyag binary.
var RootCmd = &cobra.Command{
	Use:   "wyag",
	Short: "a content-addressed object store compatible with a mainstream distributed VCS",
	Long:  "wyag",
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			version.PrintVersion()
			return
		}
		cmd.Usage()
	},
}

// rootContext returns a background context carrying a command-scoped
// logger, so logging goes through context.Context instead of a
// package-level logger. Only the init command builds one; the other
// subcommands do not log.
func rootContext(cmdName string) context.Context {
	ctx := context.Background()
	logger := logrus.StandardLogger().WithField("command", cmdName)
	return logctx.WithLogger(ctx, logger)
}
