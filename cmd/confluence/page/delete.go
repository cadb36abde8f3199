package pagecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <page-id>",
		Short: "Delete a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			if err := rt.Service.DeletePage(cmd.Context(), args[0]); err != nil {
				return err
			}

			if done, err := rt.JSONOutput(map[string]string{"id": args[0], "status": "deleted"}); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Deleted page %s\n", cliui.SuccessMark, cliui.NameStyle.Render(args[0]))
			return nil
		},
	}
}
