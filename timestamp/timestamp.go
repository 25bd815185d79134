// Package timestamp implements TimestampCodec: deriving a cell's
// timestamp from an element's properties on encode, and folding a cell's
// timestamp back into the decoded property set.
package timestamp

import (
	"fmt"
	"time"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/schema"
)

// Build derives the i64 cell timestamp for an encode call: if the
// schema's timestamp property is defined and present (non-null) in
// properties, its value is used; otherwise the current wall-clock time
// in milliseconds is used.
func Build(sch schema.Schema, properties map[string]any) (int64, error) {
	name := sch.TimestampProperty()
	if name != "" {
		if v, ok := properties[name]; ok && v != nil {
			switch ts := v.(type) {
			case int64:
				return ts, nil
			case int:
				return int64(ts), nil
			default:
				return 0, fmt.Errorf("%w: timestamp property %q has non-integer value %T", errs.ErrSerialiseFailure, name, v)
			}
		}
	}

	return time.Now().UnixMilli(), nil
}

// Extract folds a cell's timestamp back into the decoded property set: if
// the schema defines a timestamp property and group carries it in its
// declared property list, a one-entry map {name: ts} is returned;
// otherwise an empty map is returned.
func Extract(sch schema.Schema, group string, ts int64) map[string]any {
	out := make(map[string]any)

	name := sch.TimestampProperty()
	if name == "" {
		return out
	}

	def := sch.GetElement(group)
	if def == nil {
		return out
	}

	for _, p := range def.Properties() {
		if p == name {
			out[name] = ts
			return out
		}
	}

	return out
}
