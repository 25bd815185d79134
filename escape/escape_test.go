package escape

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeNeverContainsDelimiter(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x00, 0x00},
		{0xFF},
		{0x00, 0xFF, 0x00},
		[]byte("hello world"),
		[]byte("a"),
	}
	for _, in := range inputs {
		out := Escape(in)
		assert.NotContains(t, out, byte(0x00))
	}
}

func TestUnescapeInvertsEscape(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0x00, 0x00, 0x00},
		{0xFF},
		{0xFF, 0xFF},
		{0x00, 0xFF, 0x00},
		[]byte("hello world"),
	}
	for _, in := range inputs {
		out := Escape(in)
		back, err := Unescape(out)
		require.NoError(t, err)
		if len(in) == 0 {
			assert.Empty(t, back)
		} else {
			assert.Equal(t, in, back)
		}
	}
}

func TestEscapeRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := rng.Intn(64)
		in := make([]byte, n)
		_, _ = rng.Read(in)
		out := Escape(in)
		assert.NotContains(t, out, byte(0x00))
		back, err := Unescape(out)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(in, back))
	}
}

func TestUnescapeMalformed(t *testing.T) {
	_, err := Unescape([]byte{esc})
	assert.ErrorIs(t, err, errs.ErrMalformedEscape)

	_, err = Unescape([]byte{esc, 0x99})
	assert.ErrorIs(t, err, errs.ErrMalformedEscape)
}

func TestEscapeAppendThenDelimiterIsUnambiguous(t *testing.T) {
	// Prefix-safety: scanning an escaped buffer followed by a delimiter for
	// the first 0x00 byte must land exactly at the appended delimiter.
	escaped := Escape([]byte{0x00, 0xFF, 'a'})
	withDelim := append(append([]byte{}, escaped...), 0x00)
	idx := bytes.IndexByte(withDelim, 0x00)
	assert.Equal(t, len(escaped), idx)
}
