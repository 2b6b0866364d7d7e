package version

import (
	"fmt"
	"io"
	"os"
)

// Package reports the module path the running binary was built from.
func Package() string {
	return mainpkg
}

// Version reports the build's version string.
func Version() string {
	return version
}

// Revision reports the VCS commit the build was linked from, or the empty
// string if it wasn't stamped in.
func Revision() string {
	return revision
}

// FprintVersion writes a single line to w identifying the running binary:
//
//	<argv[0]> <module path> <version>
//
// e.g. "wyag github.com/levijpuckett/wyag v0.1.0".
func FprintVersion(w io.Writer) {
	fmt.Fprintln(w, os.Args[0], Package(), Version())
}

// PrintVersion writes the same line as FprintVersion to stdout.
func PrintVersion() {
	FprintVersion(os.Stdout)
}
