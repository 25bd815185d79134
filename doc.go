// Package gelcodec implements a bidirectional, byte-exact translation
// between a graph's logical elements (entities and edges with typed
// properties, package element) and the row-oriented cell format of a
// wide-column store (package cell).
//
// The translation is composed from independently testable layers:
//
//	key        — row-key layout and scan-range construction
//	value      — non-group-by property block stored in a cell's value
//	qualifier  — group-by property block stored in a cell's qualifier
//	visibility — the single designated visibility property
//	timestamp  — the cell timestamp
//	propblock  — the length-prefixed record framing value and qualifier share
//	codec      — the assembler that composes the above into whole cells
//	filter     — the pure decision of whether a scan needs a filter iterator
//
// A caller provides a schema.Schema describing each element group's
// declared property order, its group-by subset, and a per-property
// schema.Serialiser, then constructs a codec.Codec:
//
//	reg := schema.NewRegistry(schema.StringSerialiser{}, "visibility", "createdAt")
//	reg.DefineGroup("person", []string{"name", "age"}, nil, map[string]schema.Serialiser{
//		"name": schema.StringSerialiser{},
//		"age":  schema.Int64Serialiser{},
//	})
//
//	c, err := codec.New(reg)
//	cells, err := c.Encode(element.Entity{Group: "person", Vertex: "alice", Properties: props})
//	el, err := c.Decode(cells[0])
package gelcodec
