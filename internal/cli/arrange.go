package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/arrange"
	"github.com/matzehuels/scout/pkg/document"
	"github.com/matzehuels/scout/pkg/errors"
	"github.com/matzehuels/scout/pkg/widget"
)

// arrangeOptions holds flags for the arrange command.
type arrangeOptions struct {
	op          string
	widgets     string
	container   string
	constraints bool
	pick        bool
	output      string
}

// arrangeCommand creates the arrange command for applying a layout operation.
func (c *CLI) arrangeCommand() *cobra.Command {
	var opts arrangeOptions

	cmd := &cobra.Command{
		Use:   "arrange [document]",
		Short: "Apply an align, distribute or connect operation to widgets",
		Long: `Apply an arrange operation to a set of sibling widgets.

Without --widgets every non-guideline child of the container is selected.
Run 'scout ops' to list the available operations.`,
		Example: `  scout arrange form.json --op align-left --widgets name,email,phone
  scout arrange form.json --op distribute-vertical --constraints -o out.json
  scout arrange form.json --pick`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.op, "op", "", "operation name (e.g. align-left, chain-horizontal)")
	cmd.Flags().StringVarP(&opts.widgets, "widgets", "w", "", "comma-separated widget IDs")
	cmd.Flags().StringVar(&opts.container, "container", "", "select children of this container (default: root)")
	cmd.Flags().BoolVar(&opts.constraints, "constraints", false, "also create anchor constraints")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the operation interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <document>.arranged.<ext>)")
	cmd.MarkFlagsMutuallyExclusive("op", "pick")
	cmd.MarkFlagsMutuallyExclusive("widgets", "container")
	_ = cmd.RegisterFlagCompletionFunc("op", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		ops := arrange.Ops()
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.String() + "\t" + op.Description()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runArrange loads the document, applies the operation and writes the result.
func (c *CLI) runArrange(input string, opts arrangeOptions) error {
	op, ok, err := c.resolveOp(opts)
	if err != nil || !ok {
		return err
	}

	root, err := c.loadDocument(input)
	if err != nil {
		return err
	}
	selected, err := selectWidgets(root, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	if err := c.engine().Align(op, selected, opts.constraints); err != nil {
		return err
	}
	prog.done("Applied " + op.String())

	out := outputPath(input, opts.output, "arranged")
	if err := document.WriteFile(root, out); err != nil {
		return err
	}
	c.printSuccess("%s applied to %d widgets", op, len(selected))
	c.printFile(out)
	return nil
}

// resolveOp returns the operation named by --op or chosen via --pick.
func (c *CLI) resolveOp(opts arrangeOptions) (arrange.Op, bool, error) {
	if opts.pick {
		op, ok, err := pickOp()
		if err == nil && !ok {
			c.printWarning("No operation selected")
		}
		return op, ok, err
	}
	if opts.op == "" {
		return 0, false, errors.New(errors.ErrCodeInvalidInput, "one of --op or --pick is required")
	}
	op, err := arrange.ParseOp(opts.op)
	return op, err == nil, err
}

// selectWidgets resolves --widgets, falling back to the geometric children of --container.
func selectWidgets(root *widget.Widget, opts arrangeOptions) ([]*widget.Widget, error) {
	if opts.widgets != "" {
		return findWidgets(root, opts.widgets)
	}
	container, err := findContainer(root, opts.container)
	if err != nil {
		return nil, err
	}
	var out []*widget.Widget
	for _, w := range container.Children() {
		if !w.IsGuideline() {
			out = append(out, w)
		}
	}
	return out, nil
}
