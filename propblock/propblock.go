// Package propblock implements the shared length-prefixed record framing
// that both package value and package qualifier use to pack a sequence of
// property byte records into one contiguous block:
//
//	varlen(len) ‖ bytes[len]  ‖  varlen(len) ‖ bytes[len]  ‖  ...
//
// A zero-length record (len == 0) denotes "empty bytes", which each
// property's serialiser interprets via DeserialiseEmptyBytes rather than
// Deserialise.
package propblock

import (
	"fmt"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/internal/pool"
	"github.com/corvidgraph/gelcodec/schema"
	"github.com/corvidgraph/gelcodec/varint"
)

// WriteBlock appends one length-prefixed record to dst.
func WriteBlock(dst []byte, b []byte) []byte {
	dst = varint.Write(dst, int64(len(b)))
	return append(dst, b...)
}

// Writer accumulates length-prefixed records into a pooled buffer.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a pooled cell-sized buffer. Callers
// must call Release when done with the returned Bytes.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetCellBuffer()}
}

// WriteRecord appends one record, built from a property's serialised
// value or its empty/null encoding:
//   - v == nil: the serialiser's SerialiseNull() bytes are written, so a
//     caller that later reads a non-empty record back through Deserialise
//     sees the serialiser's own null convention.
//   - v != nil: the serialiser's Serialise(v) bytes are written.
//   - ser == nil (no serialiser registered for this property): an empty
//     record is written.
func (w *Writer) WriteRecord(group, name string, ser schema.Serialiser, v any) error {
	if ser == nil {
		w.buf.B = WriteBlock(w.buf.B, nil)
		return nil
	}

	var (
		b   []byte
		err error
	)
	if v == nil {
		b, err = ser.SerialiseNull()
	} else {
		b, err = ser.Serialise(v)
	}
	if err != nil {
		return fmt.Errorf("%w: group %q property %q: %v", errs.ErrSerialiseFailure, group, name, err)
	}

	w.buf.B = WriteBlock(w.buf.B, b)

	return nil
}

// Bytes returns a copy of the accumulated block. The copy is safe to keep
// after Release returns the Writer's internal buffer to the pool.
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out
}

// Release returns the Writer's internal buffer to the pool. The Writer
// must not be used afterward.
func (w *Writer) Release() {
	pool.PutCellBuffer(w.buf)
	w.buf = nil
}

// Record is one decoded length-prefixed record: Bytes is nil and Empty is
// true for a zero-length record, otherwise Bytes holds the raw record
// payload.
type Record struct {
	Bytes []byte
	Empty bool
}

// ReadRecord reads one record from buf starting at offset, returning the
// record and the offset immediately after it.
func ReadRecord(buf []byte, offset int) (Record, int, error) {
	length, next, err := varint.ReadLong(buf, offset)
	if err != nil {
		return Record{}, 0, fmt.Errorf("%w: %v", errs.ErrBadLengthPrefix, err)
	}
	if length < 0 {
		return Record{}, 0, fmt.Errorf("%w: negative record length %d", errs.ErrBadLengthPrefix, length)
	}
	if next+int(length) > len(buf) {
		return Record{}, 0, fmt.Errorf("%w: record of length %d exceeds remaining %d bytes", errs.ErrBadLengthPrefix, length, len(buf)-next)
	}

	if length == 0 {
		return Record{Empty: true}, next, nil
	}

	return Record{Bytes: buf[next : next+int(length)]}, next + int(length), nil
}

// FirstNRecordsPrefix returns the prefix of buf covering exactly the first
// n length-prefixed records. If n is 0, it returns an empty slice.
func FirstNRecordsPrefix(buf []byte, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	offset := 0
	for i := 0; i < n; i++ {
		_, next, err := ReadRecord(buf, offset)
		if err != nil {
			return nil, err
		}
		offset = next
	}

	return buf[:offset], nil
}
