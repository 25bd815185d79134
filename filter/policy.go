// Package filter implements the pure decision of whether a
// range-element-property filter iterator is needed for a given query
// shape.
package filter

// EdgeSet selects which edges a query includes.
type EdgeSet int

const (
	EdgeSetNone EdgeSet = iota
	EdgeSetDirected
	EdgeSetUndirected
	EdgeSetAll
)

// Direction selects which edge orientation(s) a query includes.
type Direction int

const (
	DirectionBoth Direction = iota
	DirectionIncoming
	DirectionOutgoing
)

// Descriptor parameterises the filter iterator the storage engine's
// iterator framework consumes. A nil *Descriptor (see Policy's return)
// means no filter is needed.
type Descriptor struct {
	IncludeEntities bool
	IncludeEdges    EdgeSet
	Direction       Direction
}

// Policy decides whether a filter is needed for a query that requests
// entities (includeEntities), a set of edges (includeEdges), and a
// direction. It returns nil when the filter can be elided — i.e. when the
// query asks for entities AND edges of every direction AND both
// incoming and outgoing edges — and a Descriptor otherwise.
func Policy(includeEntities bool, includeEdges EdgeSet, direction Direction) *Descriptor {
	if includeEntities && includeEdges == EdgeSetAll && direction == DirectionBoth {
		return nil
	}

	return &Descriptor{
		IncludeEntities: includeEntities,
		IncludeEdges:    includeEdges,
		Direction:       direction,
	}
}
