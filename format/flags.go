// Package format defines the reserved bytes that make up the wire layout of
// row keys: the delimiter, its scan-range successor, and the per-row flag
// byte that identifies an Entity row or an Edge row's orientation.
//
// These values are invariant across versions: changing any of them is a
// format-breaking change to every row key already written to a table.
package format

// Delimiter is the reserved byte that separates logical fields inside a row
// key. It never appears literally inside escaped content.
const Delimiter byte = 0x00

// DelimiterPlusOne is the least byte greater than Delimiter. It is used as
// the exclusive upper bound of a scan range immediately above an escaped
// prefix, since escaped content never contains Delimiter.
const DelimiterPlusOne byte = 0x01

// Flag identifies the kind of element a row key encodes and, for edges, the
// stored orientation.
type Flag byte

const (
	// Entity marks a row key as encoding an Entity.
	//
	// Entity shares its numeric value with DelimiterPlusOne (both are 0x01);
	// they never occupy the same position in a key, so this is not
	// ambiguous: Entity is always the terminal flag byte, DelimiterPlusOne
	// is always a scan-range successor appended after a delimiter.
	Entity Flag = 0x01

	// DirectedCorrect marks a directed edge row storing (source,
	// destination) in the order the caller supplied.
	DirectedCorrect Flag = 0x02

	// DirectedInverted marks a directed edge row storing (destination,
	// source) — the byte-swapped companion of DirectedCorrect, written to
	// support scanning by either endpoint.
	DirectedInverted Flag = 0x03

	// Undirected marks an undirected edge row. Both rows of an undirected
	// edge use this flag.
	Undirected Flag = 0x04
)

// String renders the flag for diagnostics and log lines.
func (f Flag) String() string {
	switch f {
	case Entity:
		return "Entity"
	case DirectedCorrect:
		return "DirectedCorrect"
	case DirectedInverted:
		return "DirectedInverted"
	case Undirected:
		return "Undirected"
	default:
		return "Unknown"
	}
}

// CompressionType selects the algorithm used to compress a cell's value or
// qualifier payload before it is handed to the storage engine.
type CompressionType uint8

const (
	// CompressionNone stores the payload unmodified.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses the payload with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses the payload with S2 (a Snappy variant).
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses the payload with LZ4.
	CompressionLZ4 CompressionType = 0x4
)

// String renders the compression type for diagnostics and log lines.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
