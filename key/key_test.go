package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEntityRowKeyMatchesScenario(t *testing.T) {
	got := BuildEntityRowKey([]byte("a"))
	assert.Equal(t, []byte{0x61, 0x00, 0x01}, got)
}

func TestBuildEdgeRowKeysDirected(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), true)
	require.Len(t, keys, 2)
	assert.Equal(t, []byte{0x61, 0x00, 0x02, 0x00, 0x62, 0x00, 0x02}, keys[0])
	assert.Equal(t, []byte{0x62, 0x00, 0x03, 0x00, 0x61, 0x00, 0x03}, keys[1])
}

func TestBuildEdgeRowKeysUndirected(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), false)
	require.Len(t, keys, 2)
	assert.Equal(t, []byte{0x61, 0x00, 0x04, 0x00, 0x62, 0x00, 0x04}, keys[0])
	assert.Equal(t, []byte{0x62, 0x00, 0x04, 0x00, 0x61, 0x00, 0x04}, keys[1])
}

func TestBuildEdgeRowKeysSelfEdgeDirected(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("a"), true)
	require.Len(t, keys, 1)
	assert.Equal(t, []byte{0x61, 0x00, 0x02, 0x00, 0x61, 0x00, 0x02}, keys[0])
}

func TestBuildEdgeRowKeysSelfEdgeUndirected(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("a"), false)
	require.Len(t, keys, 1)
}

func TestIsEntityRow(t *testing.T) {
	assert.True(t, IsEntityRow(BuildEntityRowKey([]byte("a"))))
	assert.False(t, IsEntityRow(BuildEdgeRowKeys([]byte("a"), []byte("b"), true)[0]))
}

func TestParseEntityRowRoundTrip(t *testing.T) {
	row := BuildEntityRowKey([]byte("vertex-with-\x00-and-\xff-bytes"))
	got, err := ParseEntityRow(row)
	require.NoError(t, err)
	assert.Equal(t, []byte("vertex-with-\x00-and-\xff-bytes"), got)
}

func TestParseEdgeRowDirectedCorrect(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), true)

	src, dst, directed, err := ParseEdgeRow(keys[0], nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), src)
	assert.Equal(t, []byte("b"), dst)
	assert.True(t, directed)
}

func TestParseEdgeRowDirectedInvertedCanonicalizesByDefault(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), true)

	src, dst, directed, err := ParseEdgeRow(keys[1], nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), src)
	assert.Equal(t, []byte("b"), dst)
	assert.True(t, directed)
}

func TestParseEdgeRowDirectedInvertedReturnsStoredOrderWhenRequested(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), true)

	opts := map[string]string{ReturnMatchedSeedsAsEdgeSource: "TRUE"}
	src, dst, directed, err := ParseEdgeRow(keys[1], opts)
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), src)
	assert.Equal(t, []byte("a"), dst)
	assert.True(t, directed)
}

func TestParseEdgeRowUndirected(t *testing.T) {
	keys := BuildEdgeRowKeys([]byte("a"), []byte("b"), false)

	src, dst, directed, err := ParseEdgeRow(keys[0], nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), src)
	assert.Equal(t, []byte("b"), dst)
	assert.False(t, directed)
}

func TestParseEdgeRowBadDelimCount(t *testing.T) {
	_, _, _, err := ParseEdgeRow([]byte{0x61, 0x00, 0x02}, nil)
	assert.Error(t, err)
}

func TestParseEdgeRowBadDirectionFlag(t *testing.T) {
	row := []byte{0x61, 0x00, 0x09, 0x00, 0x62, 0x00, 0x09}
	_, _, _, err := ParseEdgeRow(row, nil)
	assert.Error(t, err)
}

func TestScanRangesEntitySortsBelowEdgesOnlyStart(t *testing.T) {
	v := escapedVertex(t, "V")

	entityStart := EntityStartKey(v)
	edgesStart := EdgesOnlyStartKey(v)
	edgesEnd := EdgesOnlyEndKey(v)

	assert.True(t, lessThan(entityStart, edgesStart))
	assert.True(t, lessThan(edgesStart, edgesEnd))
}

func TestScanRangeEdgesOnlyCoversAllEdgeRowsForVertex(t *testing.T) {
	v := escapedVertex(t, "V")

	start := EdgesOnlyStartKey(v)
	end := EdgesOnlyEndKey(v)

	for _, other := range [][]byte{[]byte("W"), []byte("X")} {
		keysDirected := BuildEdgeRowKeys([]byte("V"), other, true)
		keysUndirected := BuildEdgeRowKeys([]byte("V"), other, false)

		for _, k := range append(keysDirected, keysUndirected...) {
			if !hasPrefix(k, v) {
				continue
			}
			assert.True(t, inRange(k, start, end), "row %x should be within [%x, %x)", k, start, end)
		}
	}
}

func TestScanRangeEntityRowSortsBelowEdgesOnlyRange(t *testing.T) {
	entityRow := BuildEntityRowKey([]byte("V"))
	v := escapedVertex(t, "V")
	start := EdgesOnlyStartKey(v)

	assert.True(t, lessThan(entityRow, start))
}

func TestAppendCopyDoesNotMutatePrefix(t *testing.T) {
	v := make([]byte, 1, 8)
	v[0] = 'V'

	_ = EntityStartKey(v)
	_ = EdgesOnlyStartKey(v)

	assert.Equal(t, byte('V'), v[0])
	assert.Equal(t, 1, len(v))
}

func escapedVertex(t *testing.T, s string) []byte {
	t.Helper()
	row := BuildEntityRowKey([]byte(s))
	// Strip the trailing D ‖ ENTITY to recover the escaped prefix itself.
	return row[:len(row)-2]
}

func lessThan(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}

	return true
}

func inRange(k, start, end []byte) bool {
	return !lessThan(k, start) && lessThan(k, end)
}
