package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levijpuckett/wyag/internal/wyagerr"
)

func TestFrameUnframeRoundTrip(t *testing.T) {
	framed := Frame(KindBlob, []byte("hello\n"))
	assert.Equal(t, "blob 6\x00hello\n", string(framed))

	kind, payload, err := Unframe(framed)
	require.NoError(t, err)
	assert.Equal(t, KindBlob, kind)
	assert.Equal(t, []byte("hello\n"), payload)
}

func TestUnframeRejectsLengthMismatch(t *testing.T) {
	_, _, err := Unframe([]byte("blob 99\x00hello\n"))
	require.Error(t, err)
	assert.True(t, wyagerr.Is(err, wyagerr.CodeMalformed))
}

func TestUnframeRejectsMissingNul(t *testing.T) {
	_, _, err := Unframe([]byte("blob 6 hello\n"))
	require.Error(t, err)
	assert.True(t, wyagerr.Is(err, wyagerr.CodeMalformed))
}

func TestUnframeRejectsMissingSpace(t *testing.T) {
	_, _, err := Unframe([]byte("blob\x00hello\n"))
	require.Error(t, err)
	assert.True(t, wyagerr.Is(err, wyagerr.CodeMalformed))
}
