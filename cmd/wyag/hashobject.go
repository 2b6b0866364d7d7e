package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/object"
	"github.com/levijpuckett/wyag/internal/objstore"
)

var (
	hashObjectKind  string
	hashObjectWrite bool
)

// HashObjectCmd computes (and, with -w, stores) the id of a file's
// content as an object of the given kind.
var HashObjectCmd = &cobra.Command{
	Use:   "hash-object <file>",
	Short: "compute an object id, optionally writing it to the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := object.ParseKind(hashObjectKind)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var obj object.Object
		switch kind {
		case object.KindBlob:
			obj = object.Blob{Data: data}
		case object.KindCommit:
			obj, err = object.ParseCommit(data)
		case object.KindTag:
			obj, err = object.ParseTag(data)
		case object.KindTree:
			var tree object.Tree
			tree, err = object.ParseTree(data)
			obj = tree
		}
		if err != nil {
			return err
		}

		if !hashObjectWrite {
			// No driver needed: Write only touches it on the actuallyWrite
			// path, so a nil-backed store can still compute the id.
			id, err := objstore.New(nil).Write(obj, false)
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		}

		e, err := discover()
		if err != nil {
			return err
		}
		id, err := e.objects.Write(obj, true)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}
