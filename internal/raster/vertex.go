// Package raster converts validated mesh vertices into renderable form and
// scan-converts triangles into a packed-ARGB pixel buffer.
package raster

import (
	"math"

	"github.com/arl/gogeo/f32/d3"

	"github.com/canidlogic/lilac-mesh/internal/lilacmesh"
)

// Mode selects which component of the per-vertex normal becomes the
// renderable attribute.
type Mode int

const (
	ModeX  Mode = iota // attribute is the unit-disk X component (scalar)
	ModeY              // attribute is the unit-disk Y component (scalar)
	Mode3D             // attribute is the full upper-hemisphere unit vector
)

// Vertex is a point ready for scan conversion: pixel-space position
// (Y-down) plus an attribute that is either a clamped scalar or a unit
// 3-vector with Vz >= 0.
type Vertex struct {
	X, Y   float64
	Vector bool
	Scalar float64
	Vec    d3.Vec3
}

// Convert maps a mesh point into a renderable vertex for a W x H target
// buffer under the given mode. A produced field that is not finite is an
// internal fault reported through assertTrue, not a returned error.
func Convert(p lilacmesh.Point, w, h int, mode Mode) Vertex {
	nx := float64(p.X) / float64(lilacmesh.MaxC)
	ny := float64(p.Y) / float64(lilacmesh.MaxC)
	ny = 1 - ny

	px := math.Floor(nx*float64(w-1)) + 0.5
	py := math.Floor(ny*float64(h-1)) + 0.5

	d := float64(p.Normd) / float64(lilacmesh.MaxC)
	a := float64(p.Norma) / float64(lilacmesh.MaxC) * 2 * math.Pi
	vx := d * math.Cos(a)
	vy := d * math.Sin(a)

	v := Vertex{X: px, Y: py}
	switch mode {
	case ModeX:
		v.Scalar = vx
	case ModeY:
		v.Scalar = vy
	case Mode3D:
		v.Vector = true
		z2 := 1 - vx*vx - vy*vy
		if z2 < 0 {
			z2 = 0
		}
		v.Vec = d3.NewVec3XYZ(float32(vx), float32(vy), float32(math.Sqrt(z2)))
	}

	assertTrue(isFinite(v), "Convert: produced non-finite vertex attribute for point %+v", p)
	return v
}

func isFinite(v Vertex) bool {
	if !finite(v.X) || !finite(v.Y) {
		return false
	}
	if v.Vector {
		return finite(float64(v.Vec.X())) && finite(float64(v.Vec.Y())) && finite(float64(v.Vec.Z()))
	}
	return finite(v.Scalar)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
