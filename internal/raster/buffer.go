package raster

import (
	"fmt"

	"github.com/canidlogic/lilac-mesh/internal/lilacmesh"
)

// MaskSentinel is the fully-opaque-black ARGB value reserved to mark a
// pixel as not writable. The vertex->color packing never produces it
// (channels are clamped into [1, 255]), so its presence always means the
// pixel came from a mask.
const MaskSentinel uint32 = 0xFF000000

const maxPixels = 16777216

// Buffer is a width x height grid of packed ARGB pixels, scanlines
// top-to-bottom.
type Buffer struct {
	W, H int
	Pix  []uint32
}

// NewBuffer allocates a zero-filled buffer. W and H must each lie in
// [1, lilacmesh.MaxC], and W*H must not exceed maxPixels.
func NewBuffer(w, h int) (*Buffer, error) {
	if w < 1 || w > lilacmesh.MaxC || h < 1 || h > lilacmesh.MaxC {
		return nil, fmt.Errorf("raster: buffer dimensions %dx%d out of range", w, h)
	}
	if w*h > maxPixels {
		return nil, fmt.Errorf("raster: buffer %dx%d exceeds %d pixel limit", w, h, maxPixels)
	}
	return &Buffer{W: w, H: h, Pix: make([]uint32, w*h)}, nil
}

// NewMaskBuffer allocates a buffer of the given dimensions and fills it
// according to the mask rule: gray(x, y) >= 128 becomes 0 (writable),
// otherwise MaskSentinel.
func NewMaskBuffer(w, h int, gray func(x, y int) uint8) (*Buffer, error) {
	buf, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gray(x, y) >= 128 {
				buf.Set(x, y, 0)
			} else {
				buf.Set(x, y, MaskSentinel)
			}
		}
	}
	return buf, nil
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) uint32 { return b.Pix[y*b.W+x] }

// Set writes the pixel at (x, y).
func (b *Buffer) Set(x, y int, v uint32) { b.Pix[y*b.W+x] = v }

// Masked reports whether the pixel at (x, y) is the immutable mask
// sentinel.
func (b *Buffer) Masked(x, y int) bool { return b.At(x, y) == MaskSentinel }
