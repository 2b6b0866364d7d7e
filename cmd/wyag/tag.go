package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/object"
)

var (
	tagAnnotate bool
	tagMessage  string
)

// placeholderTagger is used unless both user.name and user.email are set
// in the repository config. The original source this is grounded on
// hard-codes a tagger line unconditionally; this port prefers the
// configured identity when present and falls back to a clearly-labeled
// placeholder otherwise, documented in DESIGN.md.
const placeholderTagger = "wyag <wyag@localhost>"

// TagCmd lists tags, or (given a name) creates a lightweight or (-a)
// annotated tag pointing at <obj> (HEAD if omitted).
var TagCmd = &cobra.Command{
	Use:   "tag [name] [object]",
	Short: "list tags, or create one",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := discover()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			entries, err := e.refs.List("tags")
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Println(entry.Name)
			}
			return nil
		}

		name := args[0]
		objName := "HEAD"
		if len(args) == 2 {
			objName = args[1]
		}

		id, err := e.resolver.Resolve(objName)
		if err != nil {
			return err
		}

		if !tagAnnotate {
			return e.refs.Create("tags/"+name, id)
		}

		tagger := placeholderTagger
		if username, ok := e.repo.Config.UserName(); ok {
			if email, ok := e.repo.Config.UserEmail(); ok {
				tagger = fmt.Sprintf("%s <%s>", username, email)
			}
		}

		message := tagMessage
		if message == "" {
			message = name
		}

		kv := object.New()
		kv.Add("object", id.String())
		kv.Add("type", string(object.KindCommit))
		kv.Add("tag", name)
		kv.Add("tagger", tagger)
		kv.Message = []byte(message + "\n")

		tagID, err := e.objects.Write(object.Tag{KVLM: kv}, true)
		if err != nil {
			return err
		}

		return e.refs.Create("tags/"+name, tagID)
	},
}
