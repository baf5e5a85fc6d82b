package lilacmesh

// usageMap tracks, during a single load, which point indices have been
// referenced by a triangle and which directed edges have already been
// consumed by an earlier triangle. Both bitmaps are word-sliced (64 bits
// per word), in the style of a resource-tracking bitmap: dimension once,
// then mark/test in O(1). The tail bits beyond the declared universe are
// never set or consulted; hasOrphan reads a running count of marked points
// instead of scanning words.
//
// A usageMap is loader-internal: it is built fresh for each Load call and
// discarded once the mesh is validated or the load fails.
type usageMap struct {
	n        int      // number of points (universe size for PointUse)
	points   []uint64 // one bit per point index
	edges    []uint64 // one bit per ordered pair (i, j), at i*n+j
	ptsUsed  int      // count of set bits in points, for O(1) has_orphan
	edgeBits int      // total addressable edge bits (n*n)
}

const wordBits = 64

func wordsFor(nbits int) int {
	if nbits <= 0 {
		return 0
	}
	return (nbits + wordBits - 1) / wordBits
}

// newUsageMap dimensions a usage map for n points, 0 <= n <= MaxPoints.
func newUsageMap(n int) *usageMap {
	assertTrue(n >= 0 && n <= MaxPoints, "newUsageMap: n=%d out of range", n)
	edgeBits := n * n
	return &usageMap{
		n:        n,
		points:   make([]uint64, wordsFor(n)),
		edges:    make([]uint64, wordsFor(edgeBits)),
		edgeBits: edgeBits,
	}
}

// markPoint marks index i as used. Idempotent.
func (u *usageMap) markPoint(i int) {
	assertTrue(i >= 0 && i < u.n, "markPoint: index %d out of range", i)
	w, b := i/wordBits, uint(i%wordBits)
	mask := uint64(1) << b
	if u.points[w]&mask == 0 {
		u.points[w] |= mask
		u.ptsUsed++
	}
}

// consumeEdge marks the directed edge (i, j) as used, returning true if it
// was previously unmarked (i.e., the caller may proceed) or false if some
// earlier triangle already consumed it. i == j is a programmer fault: the
// caller is expected to have already rejected self-loop edges (VXDUP).
func (u *usageMap) consumeEdge(i, j int) bool {
	assertTrue(i != j, "consumeEdge: self-loop (%d, %d)", i, j)
	assertTrue(i >= 0 && i < u.n && j >= 0 && j < u.n,
		"consumeEdge: (%d, %d) out of range for n=%d", i, j, u.n)
	idx := i*u.n + j
	w, b := idx/wordBits, uint(idx%wordBits)
	mask := uint64(1) << b
	if u.edges[w]&mask != 0 {
		return false
	}
	u.edges[w] |= mask
	return true
}

// hasOrphan reports whether any point index in [0, n) is still unmarked.
func (u *usageMap) hasOrphan() bool {
	return u.ptsUsed < u.n
}
