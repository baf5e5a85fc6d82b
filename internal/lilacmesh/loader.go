package lilacmesh

import (
	"io"

	"github.com/canidlogic/lilac-mesh/internal/token"
)

// point_count / tri_count allowed ranges (P_MAX / T_MAX).
const (
	maxPointCount = MaxPoints
	maxTriCount   = MaxTris
)

// Load reads a Lilac mesh from r, validating it against the full header and
// body protocol, and returns the resulting Mesh. On any failure, the
// returned error is a *LoadError.
func Load(r io.Reader) (*Mesh, error) {
	tk := token.NewScanner(r)
	TokenizerErrString = token.ErrString

	ld := &loader{tk: tk}
	return ld.run()
}

type loader struct {
	tk token.Tokenizer

	pointCount int
	triCount   int

	stack []uint16

	points []Point
	tris   []Tri

	usage *usageMap
}

func (l *loader) fail(code Code) (*Mesh, error) {
	return nil, &LoadError{Code: code, Line: normalizeLine(l.tk.Line())}
}

func (l *loader) failLine0(code Code) (*Mesh, error) {
	return nil, &LoadError{Code: code}
}

func (l *loader) next() (token.Entity, error) {
	return l.tk.Next()
}

// run executes the header protocol, then the body protocol, then the
// end-of-input checks.
func (l *loader) run() (*Mesh, error) {
	if m, err := l.header(); err != nil {
		return m, err
	}

	l.stack = make([]uint16, 0, StackMax)
	l.points = make([]Point, 0, l.pointCount)
	l.tris = make([]Tri, 0, l.triCount)
	l.usage = newUsageMap(l.pointCount)

	for {
		e, _ := l.next()

		if e.Kind == token.TokenizerError {
			return l.fail(Code(e.Err))
		}
		if e.Kind == token.EOF {
			break
		}

		switch e.Kind {
		case token.Numeric:
			v, ok := parseDecimal(e.Text)
			if !ok {
				return l.fail(ErrNUMBER)
			}
			if len(l.stack) >= StackMax {
				return l.fail(ErrOVERFL)
			}
			l.stack = append(l.stack, v)

		case token.Operation:
			switch e.Text {
			case "p":
				if m, err := l.opPoint(); err != nil {
					return m, err
				}
			case "t":
				if m, err := l.opTri(); err != nil {
					return m, err
				}
			default:
				return l.fail(ErrBADOP)
			}

		default:
			return l.fail(ErrETYPE)
		}
	}

	if len(l.stack) != 0 {
		return l.failLine0(ErrREM)
	}
	if len(l.points) != l.pointCount {
		return l.failLine0(ErrPUNDEF)
	}
	if len(l.tris) != l.triCount {
		return l.failLine0(ErrTUNDEF)
	}
	if l.usage.hasOrphan() {
		return l.failLine0(ErrORPHAN)
	}

	return &Mesh{points: l.points, tris: l.tris}, nil
}

// header consumes the strict sequence of entities in §4.2.1. Every read is
// checked for a tokenizer failure before its kind is compared against what
// that step expects, so a genuine tokenizer error is passed through with
// its own negative code instead of being misreported as a positive,
// subsystem-owned header code.
func (l *loader) header() (*Mesh, error) {
	e, _ := l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.BeginMeta {
		return l.failLine0(ErrNOSIG)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.MetaToken || e.Text != "lilac-mesh" {
		return l.failLine0(ErrNOSIG)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.EndMeta {
		return l.fail(ErrSIGVER)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.BeginMeta {
		return l.failLine0(ErrNODIM)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.MetaToken || e.Text != "dim" {
		return l.failLine0(ErrNODIM)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.MetaToken {
		return l.fail(ErrBADDIM)
	}
	pc, ok := parseDecimal(e.Text)
	if !ok {
		return l.fail(ErrDIMVAL)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.MetaToken {
		return l.fail(ErrBADDIM)
	}
	tc, ok := parseDecimal(e.Text)
	if !ok {
		return l.fail(ErrDIMVAL)
	}

	e, _ = l.next()
	if e.Kind == token.TokenizerError {
		return l.fail(Code(e.Err))
	}
	if e.Kind != token.EndMeta {
		return l.fail(ErrBADDIM)
	}

	if int(pc) > maxPointCount {
		return l.failLine0(ErrPCOUNT)
	}
	if int(tc) > maxTriCount {
		return l.failLine0(ErrTCOUNT)
	}

	l.pointCount = int(pc)
	l.triCount = int(tc)
	return nil, nil
}

// parseDecimal implements the §4.2.1 decimal-parse rule: non-empty, all
// ASCII digits, no sign, no whitespace, rejecting the moment the running
// value would exceed MaxC.
func parseDecimal(s string) (uint16, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var v int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
		if v > MaxC {
			return 0, false
		}
	}
	return uint16(v), true
}

// pop removes and returns the top n values of the stack, in the order they
// were pushed (pop()[0] is the oldest of the n, pop()[n-1] is the top).
func (l *loader) pop(n int) []uint16 {
	assertTrue(len(l.stack) >= n, "pop: stack underflow requested n=%d have=%d", n, len(l.stack))
	start := len(l.stack) - n
	out := append([]uint16(nil), l.stack[start:]...)
	l.stack = l.stack[:start]
	return out
}

// opPoint implements §4.2.3.
func (l *loader) opPoint() (*Mesh, error) {
	if len(l.stack) < 4 {
		return l.fail(ErrUNDERF)
	}
	v := l.pop(4)
	normd, norma, x, y := v[0], v[1], v[2], v[3]

	if normd == 0 && norma != 0 {
		return l.fail(ErrNORMDA)
	}
	if int(norma) >= MaxC {
		return l.fail(ErrNORM2P)
	}
	if len(l.points) >= l.pointCount {
		return l.fail(ErrPTOVER)
	}

	l.points = append(l.points, Point{Normd: normd, Norma: norma, X: x, Y: y})
	return nil, nil
}

// opTri implements §4.2.4, in the specified check order.
func (l *loader) opTri() (*Mesh, error) {
	if len(l.stack) < 3 {
		return l.fail(ErrUNDERF)
	}
	v := l.pop(3)
	v1, v2, v3 := v[0], v[1], v[2]

	written := len(l.points)
	if int(v1) >= written || int(v2) >= written || int(v3) >= written {
		return l.fail(ErrPTREF)
	}
	if v1 == v2 || v2 == v3 || v1 == v3 {
		return l.fail(ErrVXDUP)
	}
	if v2 < v1 || v3 < v1 {
		return l.fail(ErrVXORD)
	}
	if !l.ccw(v1, v2, v3) {
		return l.fail(ErrORIENT)
	}
	if len(l.tris) > 0 {
		prev := l.tris[len(l.tris)-1]
		if !(prev.V1 < v1 || (prev.V1 == v1 && prev.V2 < v2)) {
			return l.fail(ErrTRSORT)
		}
	}
	if len(l.tris) >= l.triCount {
		return l.fail(ErrTROVER)
	}

	if !l.usage.consumeEdge(int(v1), int(v2)) {
		return l.fail(ErrDUPEDG)
	}
	if !l.usage.consumeEdge(int(v2), int(v3)) {
		return l.fail(ErrDUPEDG)
	}
	if !l.usage.consumeEdge(int(v3), int(v1)) {
		return l.fail(ErrDUPEDG)
	}

	l.usage.markPoint(int(v1))
	l.usage.markPoint(int(v2))
	l.usage.markPoint(int(v3))
	l.tris = append(l.tris, Tri{V1: v1, V2: v2, V3: v3})
	return nil, nil
}

// ccw reports whether v1, v2, v3 run counter-clockwise, per the signed-area
// test of §4.2.4 step 4. Coordinates are normalized to double precision
// before the product is formed: the coordinate domain (up to MaxC) exceeds
// float32's exact-integer range once multiplied, so this test must run in
// float64.
func (l *loader) ccw(v1, v2, v3 uint16) bool {
	p1, p2, p3 := l.points[v1], l.points[v2], l.points[v3]
	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)
	x3, y3 := float64(p3.X), float64(p3.Y)
	area := (x2-x1)*(y3-y1) - (y2-y1)*(x3-x1)
	return area > 0
}
