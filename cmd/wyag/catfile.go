package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/levijpuckett/wyag/internal/object"
)

var catFileType bool

// CatFileCmd prints the content of an object, or (with -t) just its kind.
var CatFileCmd = &cobra.Command{
	Use:   "cat-file <kind> <object>",
	Short: "print an object's content or kind",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := discover()
		if err != nil {
			return err
		}

		// cat-file -t <object> needs only the name; otherwise the first
		// argument pins the expected kind and the second names the object.
		var kindArg, nameArg string
		if catFileType {
			if len(args) != 1 {
				return fmt.Errorf("cat-file -t takes exactly one argument")
			}
			nameArg = args[0]
		} else {
			if len(args) != 2 {
				return fmt.Errorf("cat-file <kind> <object> requires two arguments")
			}
			kindArg, nameArg = args[0], args[1]
		}

		id, err := e.resolver.Resolve(nameArg)
		if err != nil {
			return err
		}

		obj, err := e.objects.Read(id)
		if err != nil {
			return err
		}

		if catFileType {
			fmt.Println(obj.Kind())
			return nil
		}

		if _, err := object.ParseKind(kindArg); err != nil {
			return err
		}
		if string(obj.Kind()) != kindArg {
			return fmt.Errorf("%s is a %s, not a %s", id, obj.Kind(), kindArg)
		}

		_, err = os.Stdout.Write(obj.Serialize())
		return err
	},
}
