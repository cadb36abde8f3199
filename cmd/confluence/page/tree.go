package pagecmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
)

func newTreeCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "tree <page-id>",
		Short: "Print the page hierarchy rooted at a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			root, err := rt.Service.PageTree(cmd.Context(), args[0], depth)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(root); done {
				return err
			}

			printTree(rt, root, nil)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", confluence.DefaultMaxDepth, "Maximum depth to descend")

	return cmd
}

// printTree renders one node per line with box-drawing guides. trunks holds
// whether each ancestor level still has siblings below it.
func printTree(rt *cmdutil.Runtime, node *confluence.PageNode, trunks []bool) {
	var prefix strings.Builder
	for i, more := range trunks {
		last := i == len(trunks)-1
		switch {
		case last && more:
			prefix.WriteString("├── ")
		case last:
			prefix.WriteString("└── ")
		case more:
			prefix.WriteString("│   ")
		default:
			prefix.WriteString("    ")
		}
	}

	fmt.Fprintf(rt.Out, "  %s%s %s\n",
		cliui.DimStyle.Render(prefix.String()),
		cliui.NameStyle.Render(node.Page.Title),
		cliui.DimStyle.Render("(id "+node.Page.ID+")"),
	)

	for i, child := range node.Children {
		printTree(rt, child, append(trunks, i < len(node.Children)-1))
	}
}
