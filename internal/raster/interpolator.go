package raster

import (
	"math"

	"github.com/arl/gogeo/f32/d3"
)

// Angle thresholds separating slerp from its two degenerate cases, and the
// minimum X/Y span at which at_x/at_y fall back to t = 0 to avoid dividing
// by (near) zero.
const (
	minSlerpAngle = math.Pi / 1024
	maxSlerpAngle = math.Pi - math.Pi/1024
	coordTheta    = 0.00001
)

type interpKind int

const (
	kindScalarLinear interpKind = iota
	kindVectorLinear
	kindSlerp
	kindDoubleSlerp
)

// Interpolator parameterizes one interpolation between two renderable
// vertices sharing the same attribute shape (both scalar or both vector).
// The mode is fixed at construction from the angle between the two unit
// vectors, per the vector-mode case split.
type Interpolator struct {
	a, b     Vertex
	kind     interpKind
	theta    float64
	sinTheta float64
}

// NewInterpolator builds an interpolator between endpoints a (t=0) and b
// (t=1).
func NewInterpolator(a, b Vertex) *Interpolator {
	it := &Interpolator{a: a, b: b}
	if !a.Vector {
		it.kind = kindScalarLinear
		return it
	}

	dot := dotVec3(a.Vec, b.Vec)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	theta := math.Acos(dot)
	it.theta = theta

	switch {
	case theta < minSlerpAngle:
		it.kind = kindVectorLinear
	case theta > maxSlerpAngle:
		it.kind = kindDoubleSlerp
	default:
		it.kind = kindSlerp
		it.sinTheta = math.Sin(theta)
	}
	return it
}

// At samples the interpolation at parameter t in [0, 1].
func (it *Interpolator) At(t float64) Vertex {
	out := Vertex{
		X: it.a.X + (it.b.X-it.a.X)*t,
		Y: it.a.Y + (it.b.Y-it.a.Y)*t,
	}
	if it.kind == kindScalarLinear {
		v := it.a.Scalar + (it.b.Scalar-it.a.Scalar)*t
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out.Scalar = v
		return out
	}

	out.Vector = true
	switch it.kind {
	case kindVectorLinear:
		out.Vec = lerpVec3(it.a.Vec, it.b.Vec, t)
	case kindSlerp:
		out.Vec = slerpVec3(it.a.Vec, it.b.Vec, it.theta, it.sinTheta, t)
	case kindDoubleSlerp:
		out.Vec = doubleSlerp(it.a.Vec, it.b.Vec, t)
	}
	return out
}

// AtX solves for t from the linear X component of the two endpoints, then
// forces the result's X to exactly x to cancel floating-point drift.
func (it *Interpolator) AtX(x float64) Vertex {
	v := it.At(it.solveT(it.a.X, it.b.X, x))
	v.X = x
	return v
}

// AtY is the Y-axis symmetric counterpart of AtX.
func (it *Interpolator) AtY(y float64) Vertex {
	v := it.At(it.solveT(it.a.Y, it.b.Y, y))
	v.Y = y
	return v
}

func (it *Interpolator) solveT(a, b, target float64) float64 {
	if math.Abs(b-a) < coordTheta {
		return 0
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	t := (target - lo) / (hi - lo)
	if a > b {
		t = 1 - t
	}
	return t
}

func dotVec3(a, b d3.Vec3) float64 {
	return float64(a.X())*float64(b.X()) + float64(a.Y())*float64(b.Y()) + float64(a.Z())*float64(b.Z())
}

func lerpVec3(a, b d3.Vec3, t float64) d3.Vec3 {
	return d3.NewVec3XYZ(
		float32(float64(a.X())+(float64(b.X())-float64(a.X()))*t),
		float32(float64(a.Y())+(float64(b.Y())-float64(a.Y()))*t),
		float32(float64(a.Z())+(float64(b.Z())-float64(a.Z()))*t),
	)
}

// slerpVec3 implements v(t) = [sin((1-t)*theta)*a + sin(t*theta)*b] / sinTheta.
func slerpVec3(a, b d3.Vec3, theta, sinTheta, t float64) d3.Vec3 {
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return d3.NewVec3XYZ(
		float32(wa*float64(a.X())+wb*float64(b.X())),
		float32(wa*float64(a.Y())+wb*float64(b.Y())),
		float32(wa*float64(a.Z())+wb*float64(b.Z())),
	)
}

// doubleSlerp handles near-antipodal vector pairs by routing the
// interpolation through the pole (0, 0, 1) in two halves, each a slerp
// against the known right-angle separation (sin(theta) = 1, so no division
// is needed).
func doubleSlerp(a, b d3.Vec3, t float64) d3.Vec3 {
	pole := d3.NewVec3XYZ(0, 0, 1)
	const rightAngle = math.Pi / 2
	if t <= 0.5 {
		return slerpVec3(a, pole, rightAngle, 1, 2*t)
	}
	return slerpVec3(pole, b, rightAngle, 1, 2*(t-0.5))
}
