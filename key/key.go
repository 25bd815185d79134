// Package key implements the row-key layer: building and parsing Entity
// and Edge row keys, and constructing the prefix scan ranges that cover
// them. This is the layer every other codec in gelcodec ultimately
// depends on, since a cell's row key is the only field the storage
// engine itself interprets for range scans.
package key

import (
	"strings"

	"github.com/corvidgraph/gelcodec/errs"
	"github.com/corvidgraph/gelcodec/escape"
	"github.com/corvidgraph/gelcodec/format"
)

// ReturnMatchedSeedsAsEdgeSource mirrors the
// OPERATION_RETURN_MATCHED_SEEDS_AS_EDGE_SOURCE option from the external
// interface contract: when parsing a DIRECTED_INVERTED row, "true"
// (case-insensitive) returns the endpoints in stored order instead of
// canonicalizing them back to (source, destination).
const ReturnMatchedSeedsAsEdgeSource = "OPERATION_RETURN_MATCHED_SEEDS_AS_EDGE_SOURCE"

// BuildEntityRowKey builds the row key for an Entity with the given
// (unescaped) vertex bytes: escape(vertexBytes) ‖ DELIMITER ‖ ENTITY.
func BuildEntityRowKey(vertexBytes []byte) []byte {
	e := escape.Escape(vertexBytes)
	out := make([]byte, 0, len(e)+2)
	out = append(out, e...)
	out = append(out, format.Delimiter, byte(format.Entity))

	return out
}

// BuildEdgeRowKeys builds the one or two row keys for an edge between
// (unescaped) srcBytes and dstBytes. directed selects the
// (DIRECTED_CORRECT, DIRECTED_INVERTED) flag pair; otherwise both rows
// carry UNDIRECTED. When srcBytes and dstBytes are byte-identical (a
// self-edge), only the first key is returned.
func BuildEdgeRowKeys(srcBytes, dstBytes []byte, directed bool) [][]byte {
	f1, f2 := format.Undirected, format.Undirected
	if directed {
		f1, f2 = format.DirectedCorrect, format.DirectedInverted
	}

	key1 := buildEdgeRow(srcBytes, f1, dstBytes, f1)

	selfEdge := len(srcBytes) == len(dstBytes) && string(srcBytes) == string(dstBytes)
	if selfEdge {
		return [][]byte{key1}
	}

	key2 := buildEdgeRow(dstBytes, f2, srcBytes, f2)

	return [][]byte{key1, key2}
}

// buildEdgeRow builds `escape(aBytes) ‖ D ‖ flag ‖ D ‖ escape(bBytes) ‖ D ‖ flag`.
func buildEdgeRow(aBytes []byte, flagA format.Flag, bBytes []byte, flagB format.Flag) []byte {
	ea := escape.Escape(aBytes)
	eb := escape.Escape(bBytes)

	out := make([]byte, 0, len(ea)+len(eb)+5)
	out = append(out, ea...)
	out = append(out, format.Delimiter, byte(flagA), format.Delimiter)
	out = append(out, eb...)
	out = append(out, format.Delimiter, byte(flagB))

	return out
}

// IsEntityRow reports whether row's terminal byte is the Entity flag.
func IsEntityRow(row []byte) bool {
	return len(row) > 0 && row[len(row)-1] == byte(format.Entity)
}

// ParseEntityRow strips the trailing DELIMITER ‖ ENTITY and unescapes the
// remainder, returning the original vertex bytes.
func ParseEntityRow(row []byte) ([]byte, error) {
	if len(row) < 2 || row[len(row)-1] != byte(format.Entity) || row[len(row)-2] != format.Delimiter {
		return nil, errs.ErrBadDirectionFlag
	}

	return escape.Unescape(row[:len(row)-2])
}

// ParseEdgeRow parses an Edge row key, returning the edge's endpoints in
// (source, destination) order and whether it is directed.
//
// options controls how a DIRECTED_INVERTED row is resolved: if
// options[ReturnMatchedSeedsAsEdgeSource] equals "true"
// (case-insensitive), the endpoints are returned in stored order;
// otherwise they are canonicalized back to (source, destination).
func ParseEdgeRow(row []byte, options map[string]string) (src, dst []byte, directed bool, err error) {
	if len(row) == 0 {
		return nil, nil, false, errs.ErrBadDelimCount
	}

	flag := format.Flag(row[len(row)-1])

	// Delimiter positions within row[0 : len-1), the terminal flag byte
	// excluded per spec.
	var delims []int
	for i, b := range row[:len(row)-1] {
		if b == format.Delimiter {
			delims = append(delims, i)
		}
	}
	if len(delims) != 3 {
		return nil, nil, false, errs.ErrBadDelimCount
	}

	p0, p1, p2 := delims[0], delims[1], delims[2]

	part0 := row[0:p0]
	part2 := row[p1+1 : p2]

	unescaped0, err := escape.Unescape(part0)
	if err != nil {
		return nil, nil, false, err
	}
	unescaped2, err := escape.Unescape(part2)
	if err != nil {
		return nil, nil, false, err
	}

	switch flag {
	case format.Undirected:
		return unescaped0, unescaped2, false, nil
	case format.DirectedCorrect:
		return unescaped0, unescaped2, true, nil
	case format.DirectedInverted:
		if strings.EqualFold(options[ReturnMatchedSeedsAsEdgeSource], "true") {
			return unescaped0, unescaped2, true, nil
		}

		return unescaped2, unescaped0, true, nil
	default:
		return nil, nil, false, errs.ErrBadDirectionFlag
	}
}

// EntityStartKey returns the inclusive start of the scan range covering
// the single Entity row for the already-escaped vertex prefix v.
func EntityStartKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.Entity))
}

// EntityEndKey returns the exclusive end of the scan range covering the
// single Entity row for the already-escaped vertex prefix v.
func EntityEndKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.Entity), format.DelimiterPlusOne)
}

// EdgesOnlyStartKey returns the inclusive start of the scan range covering
// every edge row (of any orientation) for the already-escaped vertex
// prefix v.
func EdgesOnlyStartKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.DirectedCorrect), format.Delimiter)
}

// EdgesOnlyEndKey returns the exclusive end of the scan range covering
// every edge row (of any orientation) for the already-escaped vertex
// prefix v.
func EdgesOnlyEndKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.Undirected), format.DelimiterPlusOne)
}

// EdgeStartKey returns the inclusive start of the scan range covering only
// UNDIRECTED edge rows for the already-escaped vertex prefix v.
func EdgeStartKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.Undirected))
}

// EdgeEndKey returns the exclusive end of the scan range covering only
// UNDIRECTED edge rows for the already-escaped vertex prefix v.
func EdgeEndKey(v []byte) []byte {
	return append(appendCopy(v), format.Delimiter, byte(format.Undirected), format.DelimiterPlusOne)
}

// appendCopy returns a copy of v with spare capacity, so the scan-range
// builders above never mutate the caller's prefix through append's
// underlying-array reuse.
func appendCopy(v []byte) []byte {
	out := make([]byte, len(v), len(v)+3)
	copy(out, v)

	return out
}
