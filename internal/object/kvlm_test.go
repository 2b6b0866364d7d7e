package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCommit = "tree 29ff16c9c14e2652b22f8b78bb08a5a07930c147\n" +
	"parent 206941306e8a8af65b66eaaaea388a7ae24d49a0\n" +
	"author Thibault Polge <thibault@thb.lt> 1527025023 +0200\n" +
	"committer Thibault Polge <thibault@thb.lt> 1527025044 +0200\n" +
	"gpgsig -----BEGIN PGP SIGNATURE-----\n" +
	" \n" +
	" some fake\n" +
	" multiline signature\n" +
	" -----END PGP SIGNATURE-----\n" +
	"\n" +
	"Create first draft\n"

func TestParseSerializeRoundTrip(t *testing.T) {
	kv, err := Parse([]byte(sampleCommit))
	require.NoError(t, err)

	tree, ok := kv.First("tree")
	require.True(t, ok)
	assert.Equal(t, "29ff16c9c14e2652b22f8b78bb08a5a07930c147", tree)

	sig, ok := kv.First("gpgsig")
	require.True(t, ok)
	assert.Contains(t, sig, "\n")

	assert.Equal(t, []byte("Create first draft\n"), kv.Message)

	assert.Equal(t, []byte(sampleCommit), kv.Serialize())
}

func TestMultiValueKeyPreservesOrder(t *testing.T) {
	raw := "tree 29ff16c9c14e2652b22f8b78bb08a5a07930c147\n" +
		"parent aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"parent bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n" +
		"\n" +
		"merge\n"

	kv, err := Parse([]byte(raw))
	require.NoError(t, err)

	parents := kv.All("parent")
	require.Len(t, parents, 2)
	assert.Equal(t, []string{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}, parents)

	assert.Equal(t, []byte(raw), kv.Serialize())
}

func TestParseRejectsMissingBlankLine(t *testing.T) {
	_, err := Parse([]byte("tree abc\nno blank line here"))
	assert.Error(t, err)
}

func TestKeysReportsFirstAppearanceOrder(t *testing.T) {
	kv := New()
	kv.Add("tree", "x")
	kv.Add("parent", "a")
	kv.Add("parent", "b")
	kv.Add("author", "me")

	assert.Equal(t, []string{"tree", "parent", "author"}, kv.Keys())
}
