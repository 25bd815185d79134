// Package varint implements the compact variable-length integer codec that
// ValueCodec and QualifierCodec use to prefix each property record with its
// byte length.
//
// The wire format follows Hadoop's WritableUtils VInt convention rather than
// protobuf-style LEB128: the lead byte alone tells a reader how many
// trailing bytes make up the rest of the value (DecodeVarintSize), which
// lets a caller skip a record without decoding it. Values in [-112, 127]
// encode as a single byte; outside that range the lead byte encodes the
// byte count (and sign) of what follows, most-significant byte first.
package varint

import "github.com/corvidgraph/gelcodec/errs"

// MaxLen is the longest a varint-encoded int64 can be: one lead byte plus
// up to eight value bytes.
const MaxLen = 9

// Write appends the varint encoding of v (a non-negative record length, or
// any int64) to dst and returns the extended slice.
func Write(dst []byte, v int64) []byte {
	if v >= -112 && v <= 127 {
		return append(dst, byte(v))
	}

	negative := v < 0
	work := v
	lead := -112
	if negative {
		work = ^work // one's complement
		lead = -120
	}

	payload := work
	for work != 0 {
		work >>= 8
		lead--
	}

	n := -(lead + 112)
	if negative {
		n = -(lead + 120)
	}

	dst = append(dst, byte(lead))
	for idx := n; idx != 0; idx-- {
		shift := uint(idx-1) * 8
		dst = append(dst, byte(payload>>shift))
	}

	return dst
}

// Size reports how many bytes Write(nil, v) would produce, without
// allocating.
func Size(v int64) int {
	var buf [MaxLen]byte
	return len(Write(buf[:0], v))
}

// DecodeVarintSize reports the total number of bytes a varint record
// occupies (lead byte included) given only its lead byte.
func DecodeVarintSize(firstByte byte) int {
	b := int8(firstByte)
	switch {
	case b >= -112:
		return 1
	case b < -120:
		return int(-119 - b)
	default:
		return int(-111 - b)
	}
}

// ReadLong decodes a full varint from buf starting at offset, returning the
// decoded value and the offset immediately after it.
//
// Returns errs.ErrBadLengthPrefix if buf is truncated.
func ReadLong(buf []byte, offset int) (int64, int, error) {
	if offset >= len(buf) {
		return 0, 0, errs.ErrBadLengthPrefix
	}

	first := buf[offset]
	total := DecodeVarintSize(first)
	if total == 1 {
		return int64(int8(first)), offset + 1, nil
	}

	if offset+total > len(buf) {
		return 0, 0, errs.ErrBadLengthPrefix
	}

	negative := int8(first) < -120
	var v int64
	for i := 1; i < total; i++ {
		v = (v << 8) | int64(buf[offset+i])
	}
	if negative {
		v = ^v
	}

	return v, offset + total, nil
}
