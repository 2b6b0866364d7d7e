// Package wyagerr defines the closed set of error kinds this module can
// raise, each registered up front with a stable code and message the way
// a registry's errcode package registers its API error descriptors.
package wyagerr

import (
	"errors"
	"fmt"
)

// Code identifies one of the error kinds a repository operation can fail
// with. The zero value is not a valid code.
type Code int

// The closed set of error kinds, per the error handling design.
const (
	_ Code = iota

	// CodeNotARepository is returned when repository discovery walks up
	// to the filesystem root without finding a metadata directory.
	CodeNotARepository

	// CodeConfigMissing is returned when the metadata directory exists
	// but its config file does not.
	CodeConfigMissing

	// CodeBadVersion is returned when core.repositoryformatversion is
	// present but not 0.
	CodeBadVersion

	// CodeNotFound is returned when no object, ref, or revision resolves.
	CodeNotFound

	// CodeAmbiguous is returned when a short hash prefix matches more
	// than one object on disk.
	CodeAmbiguous

	// CodeMalformed is returned when framing, KVLM, tree, or mode
	// invariants are violated.
	CodeMalformed

	// CodeUnknownKind is returned when an object header names a kind
	// outside {blob, tree, commit, tag}.
	CodeUnknownKind

	// CodeIO wraps an underlying filesystem error.
	CodeIO

	// CodeNotEmpty is returned when init or checkout require an empty
	// destination directory and it isn't one.
	CodeNotEmpty
)

var descriptions = map[Code]string{
	CodeNotARepository: "not a wyag repository",
	CodeConfigMissing:  "configuration file missing",
	CodeBadVersion:     "unsupported repositoryformatversion",
	CodeNotFound:       "not found",
	CodeAmbiguous:      "ambiguous revision",
	CodeMalformed:      "malformed object",
	CodeUnknownKind:    "unknown object kind",
	CodeIO:             "i/o error",
	CodeNotEmpty:       "destination is not empty",
}

// String returns the registered description for the code, or "unknown
// error" if the code was never registered above.
func (c Code) String() string {
	if s, ok := descriptions[c]; ok {
		return s
	}
	return "unknown error"
}

// Error is a wyag error: a registered code, an optional detail (the
// offending path, hash, or name), and an optional wrapped cause.
type Error struct {
	Code   Code
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Detail, e.Cause)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Cause)
	default:
		return e.Code.String()
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an *Error with the given code and detail.
func New(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}

// Wrap constructs an *Error with the given code and detail, wrapping cause
// so errors.Is/errors.As still see it.
func Wrap(code Code, detail string, cause error) *Error {
	return &Error{Code: code, Detail: detail, Cause: cause}
}

// Is reports whether err wraps a *Error carrying code.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}
