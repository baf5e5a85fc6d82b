package raster

import (
	"math"
	"testing"

	"github.com/arl/gogeo/f32/d3"
	"github.com/stretchr/testify/assert"
)

func TestInterpolatorScalarLinearClamped(t *testing.T) {
	a := Vertex{X: 0, Y: 0, Scalar: -1}
	b := Vertex{X: 10, Y: 0, Scalar: 1}
	it := NewInterpolator(a, b)
	mid := it.At(0.5)
	assert.InDelta(t, 0.0, mid.Scalar, 1e-9)
	assert.Equal(t, kindScalarLinear, it.kind)
}

func TestInterpolatorSlerpMidpointUnitLength(t *testing.T) {
	a := Vertex{Vector: true, Vec: d3.NewVec3XYZ(1, 0, 0)}
	b := Vertex{Vector: true, Vec: d3.NewVec3XYZ(0, 1, 0)}
	it := NewInterpolator(a, b)
	assert.Equal(t, kindSlerp, it.kind)
	mid := it.At(0.5)
	n := math.Sqrt(float64(mid.Vec.X()*mid.Vec.X() + mid.Vec.Y()*mid.Vec.Y() + mid.Vec.Z()*mid.Vec.Z()))
	assert.InDelta(t, 1.0, n, 1e-5)
}

func TestInterpolatorVectorLinearForNearIdenticalVectors(t *testing.T) {
	a := Vertex{Vector: true, Vec: d3.NewVec3XYZ(1, 0, 0)}
	b := Vertex{Vector: true, Vec: d3.NewVec3XYZ(0.9999999, 0.0001, 0)}
	it := NewInterpolator(a, b)
	assert.Equal(t, kindVectorLinear, it.kind)
}

func TestInterpolatorDoubleSlerpForAntipodalVectors(t *testing.T) {
	a := Vertex{Vector: true, Vec: d3.NewVec3XYZ(1, 0, 0.001)}
	b := Vertex{Vector: true, Vec: d3.NewVec3XYZ(-1, 0, 0.001)}
	it := NewInterpolator(a, b)
	assert.Equal(t, kindDoubleSlerp, it.kind)

	start := it.At(0)
	end := it.At(1)
	assert.InDelta(t, float64(a.Vec.X()), float64(start.Vec.X()), 1e-4)
	assert.InDelta(t, float64(b.Vec.X()), float64(end.Vec.X()), 1e-4)

	mid := it.At(0.5)
	assert.InDelta(t, 1.0, float64(mid.Vec.Z()), 1e-4, "midpoint of an antipodal pair must pass through the pole")
}

func TestAtXForcesExactX(t *testing.T) {
	a := Vertex{X: 0, Y: 0, Scalar: 0}
	b := Vertex{X: 10, Y: 5, Scalar: 1}
	it := NewInterpolator(a, b)
	s := it.AtX(3.25)
	assert.Equal(t, 3.25, s.X)
}

func TestAtXDegenerateSpanUsesZeroT(t *testing.T) {
	a := Vertex{X: 5, Y: 0, Scalar: 0.25}
	b := Vertex{X: 5.000001, Y: 10, Scalar: 0.75}
	it := NewInterpolator(a, b)
	s := it.AtX(5)
	assert.InDelta(t, 0.25, s.Scalar, 1e-9)
}
