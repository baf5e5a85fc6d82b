package lilacmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageMapMarkPointIdempotent(t *testing.T) {
	u := newUsageMap(4)
	assert.True(t, u.hasOrphan())

	u.markPoint(0)
	u.markPoint(0)
	u.markPoint(1)
	u.markPoint(2)
	assert.True(t, u.hasOrphan(), "point 3 still unmarked")

	u.markPoint(3)
	assert.False(t, u.hasOrphan())
}

func TestUsageMapConsumeEdge(t *testing.T) {
	u := newUsageMap(3)
	assert.True(t, u.consumeEdge(0, 1), "first consumption should succeed")
	assert.False(t, u.consumeEdge(0, 1), "second consumption of same directed edge must fail")
	assert.True(t, u.consumeEdge(1, 0), "reverse direction is a distinct edge")
}

func TestUsageMapZeroPoints(t *testing.T) {
	u := newUsageMap(0)
	assert.False(t, u.hasOrphan(), "empty universe has no orphans")
}

func TestUsageMapSpansMultipleWords(t *testing.T) {
	u := newUsageMap(200)
	for i := 0; i < 200; i++ {
		u.markPoint(i)
	}
	assert.False(t, u.hasOrphan())
}
