package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitTreeAndParents(t *testing.T) {
	raw := "tree aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"parent bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n" +
		"parent cccccccccccccccccccccccccccccccccccccccc\n" +
		"\n" +
		"merge commit\n"

	commit, err := ParseCommit([]byte(raw))
	require.NoError(t, err)

	tree, ok := commit.Tree()
	require.True(t, ok)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", tree)

	assert.Equal(t, []string{
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"cccccccccccccccccccccccccccccccccccccccc",
	}, commit.Parents())

	assert.Equal(t, KindCommit, commit.Kind())
	assert.Equal(t, []byte(raw), commit.Serialize())
}

func TestParseTagObject(t *testing.T) {
	raw := "object aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"type commit\n" +
		"tag v1.0\n" +
		"tagger wyag <wyag@localhost>\n" +
		"\n" +
		"v1.0\n"

	tag, err := ParseTag([]byte(raw))
	require.NoError(t, err)

	obj, ok := tag.Object()
	require.True(t, ok)
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", obj)
	assert.Equal(t, KindTag, tag.Kind())
}
