package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBufferMustWriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(CellBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(CellBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	capBefore := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("ab"))

	bb.Grow(100)

	assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	assert.Equal(t, []byte("ab"), bb.Bytes())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(CellBufferDefaultSize)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPoolGetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))

	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len())
}

func TestByteBufferPoolDiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 8)

	bb := NewByteBuffer(16)
	bb.MustWrite(make([]byte, 16))
	require.Greater(t, bb.Cap(), 8)

	p.Put(bb) // should be discarded, not panic
}

func TestGetPutCellBuffer(t *testing.T) {
	cb := GetCellBuffer()
	require.NotNil(t, cb)
	PutCellBuffer(cb)
}
