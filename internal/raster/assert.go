package raster

import assert "github.com/arl/assertgo"

// assertTrue guards numeric invariants of the conversion and rasterization
// pipeline (finite vertex positions and attributes). These are
// faults raised by malformed internal state, not data validation outcomes —
// a panic only fires when built with the "debug" tag.
func assertTrue(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}
