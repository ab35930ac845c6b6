package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scout/pkg/document"
	"github.com/matzehuels/scout/pkg/table"
	"github.com/matzehuels/scout/pkg/widget"
)

// tableCommand creates the table command for detecting table-like groups.
func (c *CLI) tableCommand() *cobra.Command {
	var (
		container string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "table [document]",
		Short: "Find the most table-like group of widgets in a container",
		Long: `Search the children of a container for the group of widgets that best
forms a table, then report its rows, columns and column alignment.

With -o the document is written back with each member's skip count set.`,
		Example: `  scout table form.json
  scout table form.json --container details -o form.table.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(args[0], container, output)
		},
	}

	cmd.Flags().StringVar(&container, "container", "", "container to search (default: root)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document with skip counts")

	return cmd
}

// runTable infers and analyzes the table group of a container.
func (c *CLI) runTable(input, containerID, output string) error {
	root, err := c.loadDocument(input)
	if err != nil {
		return err
	}
	container, err := findContainer(root, containerID)
	if err != nil {
		return err
	}

	eng := c.engine()
	prog := newProgress(c.Logger)
	members, err := eng.InferTableGroup(container)
	if err != nil {
		return err
	}
	if members == nil {
		c.printWarning("No table-like group in %s", container.ID)
		return nil
	}
	layout, err := eng.AnalyzeGroup(members)
	if err != nil {
		return err
	}
	prog.done("Analyzed table group")

	c.printSuccess("Found %d×%d table in %s", layout.Rows, layout.Cols, container.ID)
	c.printKeyValue("Widgets", strconv.Itoa(len(members)))
	c.printKeyValue("Alignment", fmt.Sprint(layout.Alignment))
	c.printKeyValue("Confidence", strconv.FormatFloat(layout.Confidence, 'f', 2, 64))
	headers, rows := cellGrid(layout, members)
	c.printGrid(headers, rows)

	if output == "" {
		return nil
	}
	if err := document.WriteFile(root, output); err != nil {
		return err
	}
	c.printFile(output)
	return nil
}

// cellGrid lays out member IDs by cell, one header per column alignment.
func cellGrid(l table.Layout, members []*widget.Widget) ([]string, [][]string) {
	headers := make([]string, l.Cols)
	for col, a := range l.Alignment {
		headers[col] = a.String()
	}
	rows := make([][]string, l.Rows)
	for r, cells := range l.Cells {
		rows[r] = make([]string, l.Cols)
		for col, idx := range cells {
			if idx >= 0 {
				rows[r][col] = members[idx].ID
			}
		}
	}
	return headers, rows
}
