package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	c, err := Decode(Encode(20, "p9"))
	require.NoError(t, err)
	assert.Equal(t, Cursor{Offset: 20, LastID: "p9"}, c)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"!!!", "bm90IGpzb24", Encode(-1, "x")} {
		_, err := Decode(s)
		assert.ErrorIs(t, err, ErrInvalid, s)
	}
}

func TestStart(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	assert.Equal(t, 2, Cursor{Offset: 2, LastID: "b"}.Start(ids))
	// a post was inserted ahead of the page
	assert.Equal(t, 3, Cursor{Offset: 2, LastID: "c"}.Start(ids))
	// the last served post is gone
	assert.Equal(t, 2, Cursor{Offset: 2, LastID: "zz"}.Start(ids))
	assert.Equal(t, 4, Cursor{Offset: 10, LastID: "zz"}.Start(ids))
}
