// Command mesh-to-png rasterizes a Lilac mesh to a PNG, either sized
// directly or masked against a source image.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canidlogic/lilac-mesh/internal/imageio"
	"github.com/canidlogic/lilac-mesh/internal/lilacmesh"
	"github.com/canidlogic/lilac-mesh/internal/raster"
	"github.com/canidlogic/lilac-mesh/internal/renderconfig"
)

var modeNames = map[string]raster.Mode{
	"vector":   raster.Mode3D,
	"scalar-x": raster.ModeX,
	"scalar-y": raster.ModeY,
}

func main() {
	root := &cobra.Command{
		Use:           "mesh-to-png [mode] <output.png> <input> <mask.png>|<W> <H>",
		Short:         "Rasterize a Lilac mesh to a PNG",
		Args:          cobra.RangeArgs(3, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic("mesh-to-png", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	mode, rest, err := resolveMode(args)
	if err != nil {
		return err
	}
	if len(rest) < 3 || len(rest) > 4 {
		return errors.New("expected <output.png> <input> <mask.png> or <output.png> <input> <W> <H>")
	}

	output := rest[0]
	input := rest[1]
	if !strings.EqualFold(filepath.Ext(output), ".png") {
		return fmt.Errorf("output file %q must have a .png extension", output)
	}

	mf, err := os.Open(input)
	if err != nil {
		return err
	}
	defer mf.Close()

	mesh, err := lilacmesh.Load(mf)
	if err != nil {
		return err
	}

	buf, err := buildBuffer(rest[2:])
	if err != nil {
		return err
	}

	for i := 0; i < mesh.TriCount(); i++ {
		tr := mesh.Tri(i)
		v1 := raster.Convert(mesh.Point(int(tr.V1)), buf.W, buf.H, mode)
		v2 := raster.Convert(mesh.Point(int(tr.V2)), buf.W, buf.H, mode)
		v3 := raster.Convert(mesh.Point(int(tr.V3)), buf.W, buf.H, mode)
		raster.Triangle(buf, v1, v2, v3)
	}

	return writePNG(output, buf, mode)
}

// resolveMode consumes an optional leading mode argument. If args[0] is not
// one of the recognized mode names, the render config's DefaultMode is
// consulted instead; an explicitly supplied mode always wins.
func resolveMode(args []string) (raster.Mode, []string, error) {
	if len(args) > 0 {
		if m, ok := modeNames[args[0]]; ok {
			return m, args[1:], nil
		}
	}

	cfg, err := renderconfig.Load(renderconfig.FileName)
	if err != nil {
		return 0, nil, err
	}
	m, ok := modeNames[cfg.DefaultMode]
	if !ok {
		return 0, nil, fmt.Errorf("no <mode> given and no defaultMode in %s", renderconfig.FileName)
	}
	return m, args, nil
}

func buildBuffer(rest []string) (*raster.Buffer, error) {
	if len(rest) == 1 {
		r, err := imageio.OpenReader(rest[0])
		if err != nil {
			return nil, err
		}
		return raster.NewMaskBuffer(r.Width(), r.Height(), func(x, y int) uint8 {
			return imageio.Grayscale(r.RowARGB(y)[x])
		})
	}

	w, err := strconv.Atoi(rest[0])
	if err != nil {
		return nil, fmt.Errorf("invalid width %q", rest[0])
	}
	h, err := strconv.Atoi(rest[1])
	if err != nil {
		return nil, fmt.Errorf("invalid height %q", rest[1])
	}
	return raster.NewBuffer(w, h)
}

func writePNG(path string, buf *raster.Buffer, mode raster.Mode) error {
	conv := imageio.Gray
	if mode == raster.Mode3D {
		conv = imageio.RGB
	}

	w := imageio.CreateWriter(path, buf.W, buf.H, conv)
	for y := 0; y < buf.H; y++ {
		row := w.ScanlineBuffer()
		for x := 0; x < buf.W; x++ {
			row[x] = buf.At(x, y)
		}
		w.CommitScanline()
	}
	return w.Close()
}

func diagnostic(program string, err error) string {
	var le *lilacmesh.LoadError
	if errors.As(err, &le) && le.Line > 0 {
		return fmt.Sprintf("%s: [line %d] %s!", program, le.Line, le.Code.String())
	}
	return fmt.Sprintf("%s: %s!", program, err.Error())
}
