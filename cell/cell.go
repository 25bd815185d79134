// Package cell defines Cell, the wide-column cell shape the codec
// package translates Elements to and from: a row key, column family,
// column qualifier, column visibility, timestamp, and value.
package cell

// Cell is one wide-column storage cell.
type Cell struct {
	Row        []byte
	Family     []byte
	Qualifier  []byte
	Visibility []byte
	Timestamp  int64
	Value      []byte
}
