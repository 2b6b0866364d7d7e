// Command wyag is the CLI driver: it resolves flags and arguments,
// discovers or initializes a repository, and dispatches to the internal
// packages that implement the actual object store, reference store,
// revision resolver, and checkout logic.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
