package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// DownConversion selects how a packed-ARGB scanline is downsampled into the
// PNG color model on encode.
type DownConversion int

const (
	RGB  DownConversion = iota // keep all three color channels
	Gray                       // collapse to a single luma channel
)

// Writer accumulates one packed-ARGB scanline at a time and encodes the
// final image as a PNG on Close.
type Writer struct {
	path string
	w, h int
	conv DownConversion
	img  image.Image
	rgba *image.RGBA
	gray *image.Gray
	y    int
	row  []uint32
}

// CreateWriter prepares a width x height PNG for path using the given
// down-conversion. The file itself is not touched until Close creates it.
func CreateWriter(path string, w, h int, conv DownConversion) *Writer {
	wr := &Writer{path: path, w: w, h: h, conv: conv, row: make([]uint32, w)}
	switch conv {
	case Gray:
		wr.gray = image.NewGray(image.Rect(0, 0, w, h))
		wr.img = wr.gray
	default:
		wr.rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		wr.img = wr.rgba
	}
	return wr
}

// ScanlineBuffer returns the buffer to fill with the next scanline's packed
// ARGB pixels, left to right.
func (w *Writer) ScanlineBuffer() []uint32 { return w.row }

// CommitScanline writes the current ScanlineBuffer contents into row y and
// advances to the next row.
func (w *Writer) CommitScanline() {
	for x, argb := range w.row {
		a := uint8(argb >> 24)
		r := uint8(argb >> 16)
		g := uint8(argb >> 8)
		b := uint8(argb)
		switch w.conv {
		case Gray:
			w.gray.SetGray(x, w.y, color.Gray{Y: Grayscale(argb)})
		default:
			w.rgba.SetRGBA(x, w.y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	w.y++
}

// Close finalizes and writes the PNG to disk.
func (w *Writer) Close() error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, w.img); err != nil {
		return fmt.Errorf("imageio: encoding %s: %w", w.path, err)
	}
	return nil
}
