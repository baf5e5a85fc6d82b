package lilacmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeshAccessors(t *testing.T) {
	m := &Mesh{
		points: []Point{{Normd: 0, Norma: 0, X: 10, Y: 20}},
		tris:   []Tri{{V1: 0, V2: 0, V3: 0}},
	}
	assert.Equal(t, 1, m.PointCount())
	assert.Equal(t, 1, m.TriCount())
	assert.Equal(t, Point{Normd: 0, Norma: 0, X: 10, Y: 20}, m.Point(0))
	assert.Len(t, m.Points(), 1)
	assert.Len(t, m.Tris(), 1)
}
