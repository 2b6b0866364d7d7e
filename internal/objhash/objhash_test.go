package objhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	id, err := Parse("CE013625030BA8DBA906F756967F9E9CA394464A")
	require.NoError(t, err)
	assert.Equal(t, Digest("ce013625030ba8dba906f756967f9e9ca394464a"), id)

	_, err = Parse("too-short")
	assert.ErrorIs(t, err, ErrInvalidDigest)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrInvalidDigest)
}

func TestSum(t *testing.T) {
	id := Sum([]byte("blob 6\x00hello\n"))
	assert.Equal(t, Digest("ce013625030ba8dba906f756967f9e9ca394464a"), id)
}

func TestPrefixSuffix(t *testing.T) {
	id := Digest("ce013625030ba8dba906f756967f9e9ca394464a")
	assert.Equal(t, "ce", id.Prefix())
	assert.Equal(t, "013625030ba8dba906f756967f9e9ca394464a", id.Suffix())
	assert.Equal(t, id.Prefix()+id.Suffix(), id.String())
}

func TestBytesRoundTrip(t *testing.T) {
	id := Digest("ce013625030ba8dba906f756967f9e9ca394464a")
	b, err := id.Bytes()
	require.NoError(t, err)
	assert.Len(t, b, 20)

	back, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, id, back)
}

func TestFromBytesWrongLength(t *testing.T) {
	_, err := FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidDigest)
}
