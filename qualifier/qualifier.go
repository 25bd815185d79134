// Package qualifier implements QualifierCodec: the property block stored
// in a cell's column qualifier, covering exactly a group's group-by
// properties in declared order. It shares propblock's framing with
// package value and additionally supports truncating the encoded block to
// its first N records for range-filter iterators that only need a
// prefix of the group-by key.
package qualifier

import (
	"fmt"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/propblock"
	"github.com/corvidgraph/gelcodec/schema"
)

// Encode builds the qualifier block for group, writing one length-prefixed
// record per property in def.GroupBy(), in order. Every group-by property
// contributes a record regardless of whether a serialiser is registered.
func Encode(sch schema.Schema, group string, properties map[string]any) ([]byte, error) {
	def := sch.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}

	w := propblock.NewWriter()
	defer w.Release()

	for _, name := range def.GroupBy() {
		var ser schema.Serialiser
		if td := def.PropertyTypeDef(name); td != nil {
			ser = td.Serialiser()
		}

		v := properties[name]
		if err := w.WriteRecord(group, name, ser, v); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

// Decode reconstructs the group-by properties carried in a qualifier
// block, in declared order, stopping once the block is exhausted.
func Decode(sch schema.Schema, group string, b []byte) (map[string]any, error) {
	out := make(map[string]any)
	if len(b) == 0 {
		return out, nil
	}

	def := sch.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}

	offset := 0
	for _, name := range def.GroupBy() {
		if offset >= len(b) {
			break
		}

		rec, next, err := propblock.ReadRecord(b, offset)
		if err != nil {
			return nil, err
		}
		offset = next

		var ser schema.Serialiser
		if td := def.PropertyTypeDef(name); td != nil {
			ser = td.Serialiser()
		}
		if ser == nil {
			continue
		}

		var val any
		if rec.Empty {
			val, err = ser.DeserialiseEmptyBytes()
		} else {
			val, err = ser.Deserialise(rec.Bytes)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: group %q property %q: %v", errs.ErrDeserialiseFailure, group, name, err)
		}

		out[name] = val
	}

	return out, nil
}

// FirstNPropertyBytes returns the prefix of an encoded qualifier block
// covering exactly the first N group-by properties of group. N=0 returns
// an empty slice; N equal to the group's full group-by count returns b
// unchanged.
func FirstNPropertyBytes(sch schema.Schema, group string, b []byte, n int) ([]byte, error) {
	def := sch.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}
	if n == len(def.GroupBy()) {
		return b, nil
	}

	return propblock.FirstNRecordsPrefix(b, n)
}
