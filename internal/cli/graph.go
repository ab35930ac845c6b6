package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/render/dot"
)

// graphOptions holds flags for the graph command.
type graphOptions struct {
	format   string
	output   string
	geometry bool
}

// graphCommand creates the graph command for visualizing the widget tree and anchors.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOptions{format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph [document]",
		Short: "Render the widget tree and its anchors as a graph",
		Long: `Render containers as clusters and anchors as labelled edges.

DOT output is printed to stdout unless -o is given; svg and png require -o.`,
		Example: `  scout graph form.json
  scout graph form.json -f svg -o form.svg --geometry`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&opts.geometry, "geometry", false, "include widget positions in labels")

	return cmd
}

func (c *CLI) runGraph(input string, opts graphOptions) error {
	root, err := c.loadDocument(input)
	if err != nil {
		return err
	}

	src := dot.ToDOT(root, dot.Options{Geometry: opts.geometry})
	var data []byte
	switch strings.ToLower(opts.format) {
	case "dot":
		if opts.output == "" {
			_, err := fmt.Fprint(c.out, src)
			return err
		}
		data = []byte(src)
	case "svg", "png":
		if opts.output == "" {
			return errors.New(errors.ErrCodeInvalidInput, "%s output requires -o", opts.format)
		}
		prog := newProgress(c.Logger)
		if strings.EqualFold(opts.format, "svg") {
			data, err = dot.RenderSVG(src)
		} else {
			data, err = dot.RenderPNG(src)
		}
		if err != nil {
			return err
		}
		prog.done("Rendered " + filepath.Base(opts.output))
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", opts.format)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	c.printSuccess("Graph rendered")
	c.printFile(opts.output)
	return nil
}
