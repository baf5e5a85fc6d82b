// Package jsonmesh transcribes a loaded mesh to the fixed JSON shape
// consumed by downstream tooling: hex 1-based ids, decimal attribute
// strings, two-space/four-space indentation.
package jsonmesh

import (
	"fmt"
	"io"

	"github.com/canidlogic/lilac-mesh/internal/lilacmesh"
)

// Encode writes m as a single JSON object to w:
//
//	{
//	  "points": [
//	    {"uid": "<hex>", "nrm": "<normd>,<norma>", "loc": "<x>,<y>"},
//	    ...
//	  ],
//	  "tris": [
//	    ["<hex>", "<hex>", "<hex>"],
//	    ...
//	  ]
//	}
//
// encoding/json's generic indenter cannot reproduce this exact two-space
// top-level / four-space array-element layout, so the object is written by
// hand, one token at a time.
func Encode(w io.Writer, m *lilacmesh.Mesh) error {
	bw := &errWriter{w: w}

	bw.printf("{\n")
	bw.printf("  \"points\": [\n")
	for i := 0; i < m.PointCount(); i++ {
		p := m.Point(i)
		comma := ","
		if i == m.PointCount()-1 {
			comma = ""
		}
		bw.printf("    {\"uid\": %q, \"nrm\": %q, \"loc\": %q}%s\n",
			hexID(i), fmt.Sprintf("%d,%d", p.Normd, p.Norma), fmt.Sprintf("%d,%d", p.X, p.Y), comma)
	}
	bw.printf("  ],\n")

	bw.printf("  \"tris\": [\n")
	for i := 0; i < m.TriCount(); i++ {
		tr := m.Tri(i)
		comma := ","
		if i == m.TriCount()-1 {
			comma = ""
		}
		bw.printf("    [%q, %q, %q]%s\n", hexID(int(tr.V1)), hexID(int(tr.V2)), hexID(int(tr.V3)), comma)
	}
	bw.printf("  ]\n")
	bw.printf("}\n")

	return bw.err
}

func hexID(zeroBased int) string {
	return fmt.Sprintf("%x", zeroBased+1)
}

// errWriter lets the sequence of printf calls in Encode ignore errors
// inline and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
