package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/document"
)

// wrapCommand creates the wrap command for fitting a container to its children.
func (c *CLI) wrapCommand() *cobra.Command {
	var (
		container string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "wrap [document]",
		Short: "Shrink a container to fit its children",
		Example: `  scout wrap form.json --container header
  scout wrap form.json --container header -o form.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWrap(args[0], container, output)
		},
	}

	cmd.Flags().StringVar(&container, "container", "", "container to wrap (default: root)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <document>.wrapped.<ext>)")

	return cmd
}

func (c *CLI) runWrap(input, containerID, output string) error {
	root, err := c.loadDocument(input)
	if err != nil {
		return err
	}
	container, err := findContainer(root, containerID)
	if err != nil {
		return err
	}
	if err := c.engine().Wrap(container); err != nil {
		return err
	}

	out := outputPath(input, output, "wrapped")
	if err := document.WriteFile(root, out); err != nil {
		return err
	}
	c.printSuccess("Wrapped %s to %d×%d", container.ID, container.Width, container.Height)
	c.printFile(out)
	return nil
}
