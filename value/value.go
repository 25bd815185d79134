// Package value implements ValueCodec: the property block stored in a
// cell's value, covering every group property except its group-by subset,
// the timestamp property, and the visibility property (those are carried
// in the qualifier, the cell timestamp, and the cell visibility instead).
package value

import (
	"fmt"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/propblock"
	"github.com/corvidgraph/gelcodec/schema"
)

// IsStoredInValue reports whether property name of group def belongs in
// the value block: it must not be a group-by property, must not be the
// schema's designated timestamp property, and must not be the schema's
// designated visibility property.
func IsStoredInValue(def schema.ElementDef, timestampProperty, visibilityProperty, name string) bool {
	if name == timestampProperty || name == visibilityProperty {
		return false
	}
	for _, g := range def.GroupBy() {
		if g == name {
			return false
		}
	}

	return true
}

// Encode builds the value block for group using its declared property
// order, writing a length-prefixed record for every property that
// IsStoredInValue selects.
func Encode(sch schema.Schema, group string, properties map[string]any) ([]byte, error) {
	def := sch.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}

	w := propblock.NewWriter()
	defer w.Release()

	ts := sch.TimestampProperty()
	vis := sch.VisibilityProperty()
	for _, name := range def.Properties() {
		if !IsStoredInValue(def, ts, vis, name) {
			continue
		}

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

// Decode reconstructs the properties carried in a value block, walking
// group's declared property order under the same IsStoredInValue filter
// used by Encode. Decoding stops once the block is exhausted even if
// declared properties remain, tolerating a truncated, qualifier-only
// projection of the block.
func Decode(sch schema.Schema, group string, b []byte) (map[string]any, error) {
	out := make(map[string]any)
	if len(b) == 0 {
		return out, nil
	}

	def := sch.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}

	ts := sch.TimestampProperty()
	vis := sch.VisibilityProperty()
	offset := 0
	for _, name := range def.Properties() {
		if !IsStoredInValue(def, ts, vis, name) {
			continue
		}
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
