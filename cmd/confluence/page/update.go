package pagecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

func newUpdateCmd() *cobra.Command {
	var (
		title    string
		body     string
		bodyFile string
	)

	cmd := &cobra.Command{
		Use:   "update <page-id>",
		Short: "Update a page's title and body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			content, err := resolveBody(body, bodyFile)
			if err != nil {
				return err
			}

			page, err := rt.Service.UpdatePage(cmd.Context(), args[0], title, content)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(page); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Updated page %s %s\n",
				cliui.SuccessMark,
				cliui.NameStyle.Render(page.Title),
				cliui.DimStyle.Render(fmt.Sprintf("(id %s, now v%d)", page.ID, page.Version)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New page title (required)")
	cmd.Flags().StringVar(&body, "body", "", "New page body in storage format")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the new body from a file")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
