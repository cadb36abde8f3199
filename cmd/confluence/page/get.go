package pagecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
)

func newGetCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "get <page-id>",
		Short: "Get a page with its body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			page, err := rt.Service.GetPage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(page); done {
				return err
			}

			printPageHeader(rt, page)

			if page.Body == "" {
				return nil
			}

			if render {
				rendered, err := cliui.RenderMarkdown(page.Body)
				if err == nil {
					fmt.Fprintln(rt.Out, rendered)
					return nil
				}
				rt.Log.Debug("markdown rendering failed, printing raw body", "error", err)
			}

			fmt.Fprintln(rt.Out)
			fmt.Fprintln(rt.Out, page.Body)
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "Render the body for terminal display")

	return cmd
}

func printPageHeader(rt *cmdutil.Runtime, page confluence.Page) {
	fmt.Fprintf(rt.Out, "  %s %s\n",
		cliui.HeaderStyle.Render(page.Title),
		cliui.DimStyle.Render(fmt.Sprintf("(id %s, v%d)", page.ID, page.Version)),
	)
	if page.WebUI != "" {
		fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render(page.WebUI))
	}
}
