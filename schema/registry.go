package schema

import (
	"github.com/corvidgraph/gelcodec/internal/collision"
	"github.com/corvidgraph/gelcodec/internal/hash"
)

// elementDef is the concrete ElementDef used by Registry.
type elementDef struct {
	properties []string
	groupBy    []string
	types      map[string]TypeDef
}

func (d *elementDef) Properties() []string { return d.properties }
func (d *elementDef) GroupBy() []string    { return d.groupBy }
func (d *elementDef) PropertyTypeDef(name string) TypeDef {
	return d.types[name]
}

// typeDef is the concrete TypeDef used by Registry.
type typeDef struct {
	ser Serialiser
}

func (t typeDef) Serialiser() Serialiser { return t.ser }

// Registry is an in-memory Schema implementation intended for tests,
// examples, and small deployments. Group lookup is cached by xxHash64 of
// the group name; a second group name that happens to hash to an
// already-used bucket is detected via internal/collision and resolved by
// falling back to an exact name comparison instead of silently aliasing
// the two groups.
type Registry struct {
	byHash       map[uint64]string
	byName       map[string]*elementDef
	tracker      *collision.Tracker
	visibility   string
	timestampKey string
	vertexSer    Serialiser
}

// NewRegistry creates an empty Registry. visibilityProperty and
// timestampProperty may be "" if the deployment uses neither.
func NewRegistry(vertexSerialiser Serialiser, visibilityProperty, timestampProperty string) *Registry {
	return &Registry{
		byHash:       make(map[uint64]string),
		byName:       make(map[string]*elementDef),
		tracker:      collision.NewTracker(),
		visibility:   visibilityProperty,
		timestampKey: timestampProperty,
		vertexSer:    vertexSerialiser,
	}
}

// DefineGroup registers or replaces the schema entry for group. properties
// is the full declared property order; groupBy must be a subsequence of
// properties. types maps a subset of properties to their serialiser.
func (r *Registry) DefineGroup(group string, properties, groupBy []string, types map[string]Serialiser) {
	typeDefs := make(map[string]TypeDef, len(types))
	for name, ser := range types {
		typeDefs[name] = typeDef{ser: ser}
	}

	_, defined := r.byName[group]
	r.byName[group] = &elementDef{
		properties: properties,
		groupBy:    groupBy,
		types:      typeDefs,
	}

	h := hash.ID(group)
	// TrackMetric treats re-registration under the same name as an error
	// (ErrGroupAlreadyDefined); Registry allows redefinition, so only feed
	// the tracker the first time a name is seen.
	if !defined {
		_ = r.tracker.TrackMetric(group, h)
	}
	r.byHash[h] = group
}

// GetElement implements Schema.
func (r *Registry) GetElement(group string) ElementDef {
	h := hash.ID(group)
	if stored, ok := r.byHash[h]; ok && stored == group {
		return r.byName[group]
	}

	// Hash miss, or a collision where the cached name for this bucket
	// differs from the requested group: fall back to the authoritative map.
	if def, ok := r.byName[group]; ok {
		return def
	}

	return nil
}

// VisibilityProperty implements Schema.
func (r *Registry) VisibilityProperty() string { return r.visibility }

// TimestampProperty implements Schema.
func (r *Registry) TimestampProperty() string { return r.timestampKey }

// VertexSerialiser implements Schema.
func (r *Registry) VertexSerialiser() Serialiser { return r.vertexSer }
