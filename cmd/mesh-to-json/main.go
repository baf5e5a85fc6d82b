// Command mesh-to-json loads a Lilac mesh and transcribes it to JSON on
// standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/canidlogic/lilac-mesh/internal/jsonmesh"
	"github.com/canidlogic/lilac-mesh/internal/lilacmesh"
)

func main() {
	root := &cobra.Command{
		Use:           "mesh-to-json <input>",
		Short:         "Transcribe a Lilac mesh file to JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cmd.OutOrStdout())
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic("mesh-to-json", err))
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := lilacmesh.Load(f)
	if err != nil {
		return err
	}
	return jsonmesh.Encode(w, m)
}

// diagnostic formats err as the documented single-line diagnostic:
// "<program>: [line N] <message>!" when a load error carries a line, or
// "<program>: <message>!" otherwise.
func diagnostic(program string, err error) string {
	var le *lilacmesh.LoadError
	if errors.As(err, &le) && le.Line > 0 {
		return fmt.Sprintf("%s: [line %d] %s!", program, le.Line, le.Code.String())
	}
	return fmt.Sprintf("%s: %s!", program, err.Error())
}
