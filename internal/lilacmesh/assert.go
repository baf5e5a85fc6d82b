package lilacmesh

import assert "github.com/arl/assertgo"

// assertTrue and assertFalse guard programmer invariants internal to the
// loader and usage map (nil structures, out-of-range internal indices).
// These are faults, not data-driven validation errors: they panic only when
// the binary is built with the "debug" tag (see assertgo), and are no-ops
// otherwise. Never use these for anything a malformed input file can
// trigger — that always goes through Code/LoadError instead.
func assertTrue(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

func assertFalse(cond bool, format string, args ...interface{}) {
	assert.False(cond, format, args...)
}
