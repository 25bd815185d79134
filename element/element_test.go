package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertiesSetGetPreservesInsertionOrder(t *testing.T) {
	p := NewProperties()
	p.Set("b", 2)
	p.Set("a", 1)
	p.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, p.Names())

	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPropertiesSetUpdateKeepsOriginalPosition(t *testing.T) {
	p := NewProperties()
	p.Set("a", 1)
	p.Set("b", 2)
	p.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, p.Names())
	v, _ := p.Get("a")
	assert.Equal(t, 99, v)
}

func TestPropertiesGetMissing(t *testing.T) {
	p := NewProperties()
	_, ok := p.Get("missing")
	assert.False(t, ok)
}

func TestPropertiesNilReceiverIsSafe(t *testing.T) {
	var p *Properties
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Names())
	_, ok := p.Get("x")
	assert.False(t, ok)
}

func TestPropertiesLen(t *testing.T) {
	p := NewProperties()
	assert.Equal(t, 0, p.Len())
	p.Set("a", 1)
	p.Set("b", 2)
	assert.Equal(t, 2, p.Len())
}

func TestEdgeIsSelfEdge(t *testing.T) {
	e := Edge{Source: "a", Destination: "a"}
	assert.True(t, e.IsSelfEdge())

	e2 := Edge{Source: "a", Destination: "b"}
	assert.False(t, e2.IsSelfEdge())
}
