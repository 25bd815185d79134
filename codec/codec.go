// Package codec composes the row-key, value, qualifier, visibility, and
// timestamp layers to translate a whole Element to and from one or two
// wide-column Cells.
package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/corvidgraph/gelcodec/cell"
	"github.com/corvidgraph/gelcodec/compress"
	"github.com/corvidgraph/gelcodec/element"
	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/format"
	"github.com/corvidgraph/gelcodec/internal/options"
	"github.com/corvidgraph/gelcodec/key"
	"github.com/corvidgraph/gelcodec/qualifier"
	"github.com/corvidgraph/gelcodec/schema"
	"github.com/corvidgraph/gelcodec/timestamp"
	"github.com/corvidgraph/gelcodec/value"
	"github.com/corvidgraph/gelcodec/visibility"
)

// config holds the options a Codec is constructed with.
type config struct {
	compression format.CompressionType
	parseOpts   map[string]string
}

// Option configures a Codec at construction time.
type Option = options.Option[*config]

// WithCompression selects the compression algorithm applied to the value
// and qualifier blocks. The default is format.CompressionNone.
func WithCompression(ct format.CompressionType) Option {
	return options.NoError[*config](func(c *config) {
		c.compression = ct
	})
}

// WithParseOption sets an edge-row-parsing option, e.g.
// key.ReturnMatchedSeedsAsEdgeSource.
func WithParseOption(name, value string) Option {
	return options.NoError[*config](func(c *config) {
		c.parseOpts[name] = value
	})
}

// Codec assembles and disassembles whole cells from Elements, given a
// Schema.
type Codec struct {
	schema      schema.Schema
	compression format.CompressionType
	valueCodec  compress.Codec
	qualCodec   compress.Codec
	parseOpts   map[string]string
}

// New builds a Codec backed by sch. By default no compression is applied;
// pass WithCompression to enable it.
func New(sch schema.Schema, opts ...Option) (*Codec, error) {
	cfg := &config{
		compression: format.CompressionNone,
		parseOpts:   make(map[string]string),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Codec{
		schema:      sch,
		compression: cfg.compression,
		valueCodec:  c,
		qualCodec:   c,
		parseOpts:   cfg.parseOpts,
	}, nil
}

// Encode translates el (an element.Entity or element.Edge) into the one
// or two cells that represent it.
func (c *Codec) Encode(el any) ([]cell.Cell, error) {
	switch e := el.(type) {
	case element.Entity:
		return c.encodeEntity(e)
	case *element.Entity:
		return c.encodeEntity(*e)
	case element.Edge:
		return c.encodeEdge(e)
	case *element.Edge:
		return c.encodeEdge(*e)
	default:
		return nil, fmt.Errorf("codec: unsupported element type %T", el)
	}
}

func (c *Codec) encodeEntity(e element.Entity) ([]cell.Cell, error) {
	vertexBytes, err := c.schema.VertexSerialiser().Serialise(e.Vertex)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex: %v", errs.ErrSerialiseFailure, err)
	}

	common, err := c.buildCommon(e.Group, e.Properties)
	if err != nil {
		return nil, err
	}

	row := key.BuildEntityRowKey(vertexBytes)

	return []cell.Cell{common.withRow(row)}, nil
}

func (c *Codec) encodeEdge(e element.Edge) ([]cell.Cell, error) {
	srcBytes, err := c.schema.VertexSerialiser().Serialise(e.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: source vertex: %v", errs.ErrSerialiseFailure, err)
	}
	dstBytes, err := c.schema.VertexSerialiser().Serialise(e.Destination)
	if err != nil {
		return nil, fmt.Errorf("%w: destination vertex: %v", errs.ErrSerialiseFailure, err)
	}

	common, err := c.buildCommon(e.Group, e.Properties)
	if err != nil {
		return nil, err
	}

	rows := key.BuildEdgeRowKeys(srcBytes, dstBytes, e.Directed)

	cells := make([]cell.Cell, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, common.withRow(row))
	}

	return cells, nil
}

// commonFields are the parts of a cell shared by every row key an element
// produces.
type commonFields struct {
	family     []byte
	qualifier  []byte
	value      []byte
	visibility []byte
	ts         int64
}

func (c commonFields) withRow(row []byte) cell.Cell {
	return cell.Cell{
		Row:        row,
		Family:     c.family,
		Qualifier:  c.qualifier,
		Value:      c.value,
		Visibility: c.visibility,
		Timestamp:  c.ts,
	}
}

func (c *Codec) buildCommon(group string, props *element.Properties) (commonFields, error) {
	propMap := propertiesToMap(props)

	ts, err := timestamp.Build(c.schema, propMap)
	if err != nil {
		return commonFields{}, err
	}

	qualBytes, err := qualifier.Encode(c.schema, group, propMap)
	if err != nil {
		return commonFields{}, err
	}
	qualBytes, err = compressWithTag(c.qualCodec, c.compression, qualBytes)
	if err != nil {
		return commonFields{}, err
	}

	valBytes, err := value.Encode(c.schema, group, propMap)
	if err != nil {
		return commonFields{}, err
	}
	valBytes, err = compressWithTag(c.valueCodec, c.compression, valBytes)
	if err != nil {
		return commonFields{}, err
	}

	visBytes, err := visibility.Encode(c.schema, group, propMap)
	if err != nil {
		return commonFields{}, err
	}

	return commonFields{
		family:     []byte(group),
		qualifier:  qualBytes,
		value:      valBytes,
		visibility: visBytes,
		ts:         ts,
	}, nil
}

// Decode translates a single cell back into the Element it represents:
// either an *element.Entity or an *element.Edge.
func (c *Codec) Decode(cl cell.Cell) (any, error) {
	if !utf8.Valid(cl.Family) {
		return nil, errs.ErrBadGroupEncoding
	}
	group := string(cl.Family)

	qualBytes, err := decompressWithTag(cl.Qualifier)
	if err != nil {
		return nil, err
	}
	valBytes, err := decompressWithTag(cl.Value)
	if err != nil {
		return nil, err
	}

	props, err := c.decodeProperties(group, qualBytes, valBytes, cl.Visibility, cl.Timestamp)
	if err != nil {
		return nil, err
	}

	if key.IsEntityRow(cl.Row) {
		vertexBytes, err := key.ParseEntityRow(cl.Row)
		if err != nil {
			return nil, err
		}
		vertex, err := c.schema.VertexSerialiser().Deserialise(vertexBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex: %v", errs.ErrDeserialiseFailure, err)
		}

		return &element.Entity{Group: group, Vertex: vertex, Properties: props}, nil
	}

	srcBytes, dstBytes, directed, err := key.ParseEdgeRow(cl.Row, c.parseOpts)
	if err != nil {
		return nil, err
	}
	src, err := c.schema.VertexSerialiser().Deserialise(srcBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: source vertex: %v", errs.ErrDeserialiseFailure, err)
	}
	dst, err := c.schema.VertexSerialiser().Deserialise(dstBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: destination vertex: %v", errs.ErrDeserialiseFailure, err)
	}

	return &element.Edge{Group: group, Source: src, Destination: dst, Directed: directed, Properties: props}, nil
}

// decodeProperties merges properties decoded from the qualifier, value,
// visibility, and timestamp, in that precedence (later wins on conflict,
// though by construction the keysets are disjoint).
func (c *Codec) decodeProperties(group string, qualBytes, valBytes, visBytes []byte, ts int64) (*element.Properties, error) {
	def := c.schema.GetElement(group)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGroup, group)
	}

	qualProps, err := qualifier.Decode(c.schema, group, qualBytes)
	if err != nil {
		return nil, err
	}
	valProps, err := value.Decode(c.schema, group, valBytes)
	if err != nil {
		return nil, err
	}
	visProps, err := visibility.Decode(c.schema, group, visBytes)
	if err != nil {
		return nil, err
	}
	tsProps := timestamp.Extract(c.schema, group, ts)

	out := element.NewProperties()
	for _, name := range def.Properties() {
		if v, ok := tsProps[name]; ok {
			out.Set(name, v)
			continue
		}
		if v, ok := visProps[name]; ok {
			out.Set(name, v)
			continue
		}
		if v, ok := valProps[name]; ok {
			out.Set(name, v)
			continue
		}
		if v, ok := qualProps[name]; ok {
			out.Set(name, v)
		}
	}

	return out, nil
}

func propertiesToMap(props *element.Properties) map[string]any {
	out := make(map[string]any, props.Len())
	for _, name := range props.Names() {
		v, _ := props.Get(name)
		out[name] = v
	}

	return out
}

// compressWithTag compresses b (if compression is not CompressionNone) and
// prepends a one-byte compression-type tag so decompressWithTag can select
// the matching decompressor without external metadata.
func compressWithTag(c compress.Codec, ct format.CompressionType, b []byte) ([]byte, error) {
	compressed, err := c.Compress(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCompressionFailure, err)
	}

	out := make([]byte, 0, len(compressed)+1)
	out = append(out, byte(ct))
	out = append(out, compressed...)

	return out, nil
}

func decompressWithTag(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, nil
	}

	ct := format.CompressionType(b[0])
	c, err := compress.GetCodec(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressionFailure, err)
	}

	out, err := c.Decompress(b[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressionFailure, err)
	}

	return out, nil
}
