package pagecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

func newChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <page-id>",
		Short: "List the direct children of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			children, err := rt.Service.ChildPages(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(children); done {
				return err
			}

			if len(children) == 0 {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no child pages"))
				return nil
			}
			for _, child := range children {
				fmt.Fprintf(rt.Out, "  %s %s\n",
					cliui.NameStyle.Render(child.Title),
					cliui.DimStyle.Render("(id "+child.ID+")"),
				)
			}
			return nil
		},
	}
}
