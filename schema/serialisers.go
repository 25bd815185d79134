package schema

import (
	"fmt"
	"math"

	"github.com/corvidgraph/gelcodec/endian"
	"github.com/corvidgraph/gelcodec/errs"
)

// StringSerialiser serialises string properties as raw UTF-8 bytes. Null
// is distinguished from "" by a single 0x00 sentinel byte, which cannot
// occur in valid UTF-8 text; DeserialiseEmptyBytes (a zero-length record)
// maps to "".
type StringSerialiser struct{}

var nullSentinel = []byte{0x00}

func (StringSerialiser) Serialise(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", errs.ErrSerialiseFailure, v)
	}

	return []byte(s), nil
}

func (StringSerialiser) Deserialise(b []byte) (any, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return nil, nil
	}

	return string(b), nil
}

func (StringSerialiser) SerialiseNull() ([]byte, error) {
	return nullSentinel, nil
}

func (StringSerialiser) DeserialiseEmptyBytes() (any, error) {
	return "", nil
}

// Int64Serialiser serialises int64 properties as 8 bytes in Engine's byte
// order. Null has no non-empty-bytes encoding distinct from 0;
// DeserialiseEmptyBytes returns nil to represent "absent", matching a
// property that was never set.
//
// Engine defaults to big-endian (the zero value), which keeps a
// serialised int64's byte-lexicographic order consistent with its
// numeric order — the property this row key's embedding vertex
// serialiser and the wide-column store's own range scans rely on.
// Deployments whose storage engine compares bytes in native host order
// can set Engine to endian.GetLittleEndianEngine() instead.
type Int64Serialiser struct {
	Engine endian.EndianEngine
}

func (s Int64Serialiser) engine() endian.EndianEngine {
	if s.Engine == nil {
		return endian.GetBigEndianEngine()
	}

	return s.Engine
}

func (s Int64Serialiser) Serialise(v any) ([]byte, error) {
	i, ok := toInt64(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected int64, got %T", errs.ErrSerialiseFailure, v)
	}

	return s.engine().AppendUint64(make([]byte, 0, 8), uint64(i)), nil
}

func (s Int64Serialiser) Deserialise(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("%w: expected 8 bytes, got %d", errs.ErrDeserialiseFailure, len(b))
	}

	return int64(s.engine().Uint64(b)), nil
}

func (Int64Serialiser) SerialiseNull() ([]byte, error) {
	return make([]byte, 8), nil
}

func (Int64Serialiser) DeserialiseEmptyBytes() (any, error) {
	return nil, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// Float64Serialiser serialises float64 properties as 8 bytes of IEEE 754
// bits in Engine's byte order (see Int64Serialiser for the default).
type Float64Serialiser struct {
	Engine endian.EndianEngine
}

func (s Float64Serialiser) engine() endian.EndianEngine {
	if s.Engine == nil {
		return endian.GetBigEndianEngine()
	}

	return s.Engine
}

func (s Float64Serialiser) Serialise(v any) ([]byte, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: expected float64, got %T", errs.ErrSerialiseFailure, v)
	}

	return s.engine().AppendUint64(make([]byte, 0, 8), math.Float64bits(f)), nil
}

func (s Float64Serialiser) Deserialise(b []byte) (any, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("%w: expected 8 bytes, got %d", errs.ErrDeserialiseFailure, len(b))
	}

	return math.Float64frombits(s.engine().Uint64(b)), nil
}

func (Float64Serialiser) SerialiseNull() ([]byte, error) {
	return make([]byte, 8), nil
}

func (Float64Serialiser) DeserialiseEmptyBytes() (any, error) {
	return nil, nil
}

// BoolSerialiser serialises bool properties as a single byte.
type BoolSerialiser struct{}

func (BoolSerialiser) Serialise(v any) ([]byte, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: expected bool, got %T", errs.ErrSerialiseFailure, v)
	}
	if b {
		return []byte{1}, nil
	}

	return []byte{0}, nil
}

func (BoolSerialiser) Deserialise(b []byte) (any, error) {
	if len(b) != 1 {
		return nil, fmt.Errorf("%w: expected 1 byte, got %d", errs.ErrDeserialiseFailure, len(b))
	}

	return b[0] != 0, nil
}

func (BoolSerialiser) SerialiseNull() ([]byte, error) {
	return []byte{0}, nil
}

func (BoolSerialiser) DeserialiseEmptyBytes() (any, error) {
	return nil, nil
}
