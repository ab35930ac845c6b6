package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/arrange"
)

// opsCommand creates the ops command listing arrange operations.
func (c *CLI) opsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List arrange operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := arrange.Ops()
			rows := make([][]string, len(ops))
			for i, op := range ops {
				rows[i] = []string{op.String(), op.Description()}
			}
			c.printGrid([]string{"Operation", "Description"}, rows)
			return nil
		},
	}
}
