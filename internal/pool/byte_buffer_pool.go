// Package pool provides pooled, growable byte buffers for building
// length-prefixed property blocks without allocating on every encode call.
// Row keys are built with plain slices and do not use the pool.
package pool

import (
	"io"
	"sync"
)

// Default and maximum buffer sizes for the cell-sized pool. Cells (row
// keys, qualifier/value blocks) are small, so buffers start at 4KiB and
// are discarded once they outgrow 64KiB rather than retained bloated.
const (
	CellBufferDefaultSize  = 1024 * 4  // 4KiB
	CellBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a growable byte buffer with an amortized growth strategy,
// designed to be reused via ByteBufferPool rather than reallocated per call.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy:
//   - For small buffers (at most 4x the default size), grow by CellBufferDefaultSize
//     to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory
//     usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := CellBufferDefaultSize
	if cap(bb.B) > 4*CellBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers to minimize allocations, discarding
// buffers that grew past maxThreshold to avoid retaining memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var cellDefaultPool = NewByteBufferPool(CellBufferDefaultSize, CellBufferMaxThreshold)

// GetCellBuffer retrieves a ByteBuffer from the default cell-sized pool.
func GetCellBuffer() *ByteBuffer {
	return cellDefaultPool.Get()
}

// PutCellBuffer returns a ByteBuffer to the default cell-sized pool.
func PutCellBuffer(bb *ByteBuffer) {
	cellDefaultPool.Put(bb)
}
