package lilacmesh

// Numeric bounds shared by the file format and the in-memory model.
const (
	// MaxC is the ceiling for every encoded coordinate and normal
	// component. It must fit in unsigned 16-bit range.
	MaxC = 16384

	// MaxPoints is the largest point_count a mesh may declare.
	MaxPoints = 1024

	// MaxTris is the largest tri_count a mesh may declare.
	MaxTris = 1024

	// StackMax is the interpreter stack's capacity.
	StackMax = 16
)

// Point is a single mesh vertex: an image-plane position plus a
// surface-normal direction encoded in polar form.
//
// normd == 0 means the normal points directly at the viewer; MaxC means 90
// degrees away. norma is the polar angle in the XY plane (Y up); 0 is +X,
// MaxC/4 is +Y. y == 0 is the bottom image row, y == MaxC the top row.
type Point struct {
	Normd uint16
	Norma uint16
	X     uint16
	Y     uint16
}

// Tri is a triangle: three point indices into the owning Mesh's Points
// slice. V1 is always the index with the lowest numeric value among the
// three, and V1, V2, V3 run counter-clockwise around the triangle in the
// image plane.
type Tri struct {
	V1, V2, V3 uint16
}

// Mesh is an immutable, validated triangulation. It is constructed only by
// Load and carries no append API: once built, it is read-only.
type Mesh struct {
	points []Point
	tris   []Tri
}

// PointCount returns the number of points in the mesh.
func (m *Mesh) PointCount() int { return len(m.points) }

// TriCount returns the number of triangles in the mesh.
func (m *Mesh) TriCount() int { return len(m.tris) }

// Point returns the i'th point. It panics if i is out of range; callers are
// expected to have checked against PointCount, since this is a programmer
// contract, not a data validation boundary.
func (m *Mesh) Point(i int) Point { return m.points[i] }

// Tri returns the i'th triangle.
func (m *Mesh) Tri(i int) Tri { return m.tris[i] }

// Points returns the mesh's points as a read-only slice. Callers must not
// mutate the returned slice.
func (m *Mesh) Points() []Point { return m.points }

// Tris returns the mesh's triangles as a read-only slice. Callers must not
// mutate the returned slice.
func (m *Mesh) Tris() []Tri { return m.tris }
