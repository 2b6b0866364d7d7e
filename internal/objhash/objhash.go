// Package objhash provides the content-addressing primitive this module
// hashes every object frame with: a SHA-1 digest, formatted the way the
// on-disk object path expects it (40 lowercase hex characters).
package objhash

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Digest is a validated, lowercase hex SHA-1 digest string. Unlike a plain
// string, a Digest is only ever produced by Sum, Parse, or FromBytes, all
// of which guarantee the 40-character hex invariant.
type Digest string

var hexPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// ErrInvalidDigest is returned by Parse when s is not 40 lowercase hex
// characters.
var ErrInvalidDigest = fmt.Errorf("invalid digest: must be 40 lowercase hex characters")

// Parse validates s and returns it as a Digest. The input is lowercased
// first, matching the resolver's short/long hash handling.
func Parse(s string) (Digest, error) {
	s = strings.ToLower(s)
	if !hexPattern.MatchString(s) {
		return "", ErrInvalidDigest
	}
	return Digest(s), nil
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) Digest {
	sum := sha1.Sum(data)
	return Digest(hex.EncodeToString(sum[:]))
}

// String returns the digest's hex representation.
func (d Digest) String() string { return string(d) }

// Prefix returns the two leading hex characters used as the fan-out
// directory name under objects/.
func (d Digest) Prefix() string { return string(d)[:2] }

// Suffix returns the remaining 38 hex characters used as the filename
// under the fan-out directory.
func (d Digest) Suffix() string { return string(d)[2:] }

// Bytes returns the 20-byte big-endian binary form of the digest, as used
// in a tree entry's raw encoding.
func (d Digest) Bytes() ([]byte, error) {
	b, err := hex.DecodeString(string(d))
	if err != nil {
		return nil, ErrInvalidDigest
	}
	if len(b) != 20 {
		return nil, ErrInvalidDigest
	}
	return b, nil
}

// FromBytes decodes a 20-byte big-endian binary digest into its hex form.
func FromBytes(b []byte) (Digest, error) {
	if len(b) != 20 {
		return "", ErrInvalidDigest
	}
	return Digest(hex.EncodeToString(b)), nil
}
