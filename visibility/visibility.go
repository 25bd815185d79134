// Package visibility implements VisibilityCodec: translating a single
// designated visibility property to and from the cell visibility byte
// string. A deployment with no visibility property configured, or with no
// serialiser registered for it on a given group, encodes and decodes as
// an empty byte string.
package visibility

import "github.com/corvidgraph/gelcodec/schema"

// Encode builds the visibility bytes for group from properties, using the
// schema's configured visibility property and the group's serialiser for
// it.
func Encode(sch schema.Schema, group string, properties map[string]any) ([]byte, error) {
	name := sch.VisibilityProperty()
	if name == "" {
		return []byte{}, nil
	}

	def := sch.GetElement(group)
	if def == nil {
		return []byte{}, nil
	}

	td := def.PropertyTypeDef(name)
	if td == nil {
		return []byte{}, nil
	}
	ser := td.Serialiser()

	v, ok := properties[name]
	if !ok || v == nil {
		return ser.SerialiseNull()
	}

	return ser.Serialise(v)
}

// Decode reconstructs the visibility property (if any) from b, returning
// a one-entry map when a non-null value is recovered, or an empty map
// otherwise.
func Decode(sch schema.Schema, group string, b []byte) (map[string]any, error) {
	out := make(map[string]any)

	name := sch.VisibilityProperty()
	if name == "" {
		return out, nil
	}

	def := sch.GetElement(group)
	if def == nil {
		return out, nil
	}

	td := def.PropertyTypeDef(name)
	if td == nil {
		return out, nil
	}
	ser := td.Serialiser()

	if len(b) == 0 {
		v, err := ser.DeserialiseEmptyBytes()
		if err != nil {
			return nil, err
		}
		if v != nil {
			out[name] = v
		}

		return out, nil
	}

	v, err := ser.Deserialise(b)
	if err != nil {
		return nil, err
	}
	out[name] = v

	return out, nil
}
