package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/document"
)

// inferCommand creates the infer command for synthesizing constraints.
func (c *CLI) inferCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "infer [document]",
		Short: "Infer anchor constraints for every container",
		Long: `Infer anchor constraints bottom-up for every container in the document.

Existing anchors are kept; only unconstrained sides are connected.`,
		Example: `  scout infer form.json
  scout infer form.toml -o constrained.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfer(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <document>.constrained.<ext>)")

	return cmd
}

// runInfer loads the document, synthesizes constraints and writes the result.
func (c *CLI) runInfer(ctx context.Context, input, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	root, err := c.loadDocument(input)
	if err != nil {
		return err
	}
	before := countAnchors(root)

	spinner := newSpinner(ctx, c.errw, "Inferring constraints...")
	spinner.Start()
	prog := newProgress(c.Logger)
	err = c.engine().InferConstraints(root)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("Inferred constraints")

	out := outputPath(input, output, "constrained")
	if err := document.WriteFile(root, out); err != nil {
		return err
	}
	c.printSuccess("Constraints inferred")
	c.printStats(fmt.Sprintf("%d anchors", countAnchors(root)), fmt.Sprintf("%d new", countAnchors(root)-before))
	c.printFile(out)
	c.printNextStep("Visualize", "scout graph "+out+" -f svg")
	return nil
}
