package qualifier

import (
	"testing"

	"github.com/corvidgraph/gelcodec/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchema() *schema.Registry {
	reg := schema.NewRegistry(schema.StringSerialiser{}, "", "ts")
	reg.DefineGroup("g", []string{"p1", "p2", "p3", "ts"}, []string{"p1", "p2"}, map[string]schema.Serialiser{
		"p1": schema.Int64Serialiser{},
		"p2": schema.Int64Serialiser{},
		"p3": schema.Int64Serialiser{},
	})

	return reg
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	reg := newTestSchema()

	encoded, err := Encode(reg, "g", map[string]any{"p1": int64(1), "p2": int64(2)})
	require.NoError(t, err)

	decoded, err := Decode(reg, "g", encoded)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"p1": int64(1), "p2": int64(2)}, decoded)
}

func TestFirstNPropertyBytesIsPrefix(t *testing.T) {
	reg := newTestSchema()

	full, err := Encode(reg, "g", map[string]any{"p1": int64(1), "p2": int64(2)})
	require.NoError(t, err)

	prefix1, err := FirstNPropertyBytes(reg, "g", full, 1)
	require.NoError(t, err)
	assert.True(t, len(prefix1) < len(full))
	assert.Equal(t, full[:len(prefix1)], prefix1)

	decoded1, err := Decode(reg, "g", prefix1)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"p1": int64(1)}, decoded1)

	prefix0, err := FirstNPropertyBytes(reg, "g", full, 0)
	require.NoError(t, err)
	assert.Empty(t, prefix0)

	prefixFull, err := FirstNPropertyBytes(reg, "g", full, 2)
	require.NoError(t, err)
	assert.Equal(t, full, prefixFull)
}

func TestDecodeEmptyBytes(t *testing.T) {
	reg := newTestSchema()
	out, err := Decode(reg, "g", nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncodeUnknownGroup(t *testing.T) {
	reg := newTestSchema()
	_, err := Encode(reg, "nope", nil)
	assert.Error(t, err)
}
