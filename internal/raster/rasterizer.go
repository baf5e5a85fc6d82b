package raster

import "math"

// edge is one side of a triangle, endpoint order as given by the caller
// (not yet sorted by Y).
type edge struct {
	a, b Vertex
}

func (e edge) deltaY() float64 { return math.Abs(e.b.Y - e.a.Y) }

// ascending returns e with endpoints swapped if necessary so that a.Y <= b.Y.
func (e edge) ascending() edge {
	if e.a.Y > e.b.Y {
		return edge{e.b, e.a}
	}
	return e
}

// Triangle scan-converts v1, v2, v3 into buf, leaving any pixel already
// marked with MaskSentinel untouched.
func Triangle(buf *Buffer, v1, v2, v3 Vertex) {
	edges := [3]edge{{v1, v2}, {v2, v3}, {v3, v1}}

	longIdx := 0
	longDY := edges[0].deltaY()
	for i := 1; i < 3; i++ {
		if d := edges[i].deltaY(); d > longDY {
			longDY = d
			longIdx = i
		}
	}

	long := edges[longIdx]
	renderPair(buf, long, edges[(longIdx+1)%3])
	renderPair(buf, long, edges[(longIdx+2)%3])
}

func renderPair(buf *Buffer, a, b edge) {
	a = a.ascending()
	b = b.ascending()

	yMin := math.Max(a.a.Y, b.a.Y)
	yMax := math.Min(a.b.Y, b.b.Y)
	if yMin >= yMax {
		return
	}

	yStart := firstIndex(yMin)
	yEnd := lastIndex(yMax)
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > buf.H-1 {
		yEnd = buf.H - 1
	}
	if yStart > yEnd {
		return
	}

	ia := NewInterpolator(a.a, a.b)
	ib := NewInterpolator(b.a, b.b)

	for y := yStart; y <= yEnd; y++ {
		center := float64(y) + 0.5
		left := ia.AtY(center)
		right := ib.AtY(center)
		renderSpan(buf, y, left, right)
	}
}

func renderSpan(buf *Buffer, y int, left, right Vertex) {
	if right.X < left.X {
		left, right = right, left
	}

	xStart := firstIndex(left.X)
	xEnd := lastIndex(right.X)
	if xStart < 0 {
		xStart = 0
	}
	if xEnd > buf.W-1 {
		xEnd = buf.W - 1
	}
	if xStart > xEnd {
		return
	}

	it := NewInterpolator(left, right)
	for x := xStart; x <= xEnd; x++ {
		if buf.Masked(x, y) {
			continue
		}
		sample := it.AtX(float64(x) + 0.5)
		buf.Set(x, y, vertexColor(sample))
	}
}

// firstIndex/lastIndex implement the top-left fill rule: the first
// scanline/column is floor(v), incremented if the fractional part exceeds
// 0.5; the last is floor(v), decremented if the fractional part does not
// exceed 0.5.
func firstIndex(v float64) int {
	f := math.Floor(v)
	i := int(f)
	if v-f > 0.5 {
		i++
	}
	return i
}

func lastIndex(v float64) int {
	f := math.Floor(v)
	i := int(f)
	if v-f <= 0.5 {
		i--
	}
	return i
}
