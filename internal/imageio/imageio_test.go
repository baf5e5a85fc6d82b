package imageio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayscaleCoefficients(t *testing.T) {
	assert.Equal(t, uint8(255), Grayscale(0xFFFFFFFF))
	assert.Equal(t, uint8(0), Grayscale(0xFF000000))
}

func TestWriterReaderRoundTripRGB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	w := CreateWriter(path, 2, 2, RGB)
	for y := 0; y < 2; y++ {
		buf := w.ScanlineBuffer()
		for x := range buf {
			buf[x] = 0xFF112233
		}
		w.CommitScanline()
	}
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, uint32(0xFF112233), r.RowARGB(0)[0])
}

func TestWriterReaderRoundTripGray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	w := CreateWriter(path, 1, 1, Gray)
	buf := w.ScanlineBuffer()
	buf[0] = 0xFF808080
	w.CommitScanline()
	require.NoError(t, w.Close())

	r, err := OpenReader(path)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), Grayscale(r.RowARGB(0)[0]))
}
