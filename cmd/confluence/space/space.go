// Package spacecmder provides the space skills: list and get.
package spacecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
)

const spaceLongDesc string = `Work with Confluence spaces.

Examples:
  confluence space list
  confluence space list --limit 10
  confluence space get DEV`

const spaceShortDesc string = "Work with Confluence spaces"

func NewSpaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: spaceShortDesc,
		Long:  spaceLongDesc,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newGetCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			spaces, err := rt.Service.ListSpaces(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(spaces); done {
				return err
			}

			if len(spaces) == 0 {
				fmt.Fprintln(rt.Out, "No spaces found.")
				return nil
			}

			for _, space := range spaces {
				fmt.Fprintf(rt.Out, "  %s  %s %s\n",
					cliui.KeyStyle.Render(fmt.Sprintf("%-10s", space.Key)),
					cliui.ValueStyle.Render(space.Name),
					cliui.DimStyle.Render("("+space.Type+")"),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of spaces to list (0 = all)")

	return cmd
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a space by key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			space, err := rt.Service.GetSpace(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(space); done {
				return err
			}

			printSpace(rt, space)
			return nil
		},
	}

	return cmd
}

func printSpace(rt *cmdutil.Runtime, space confluence.Space) {
	rows := [][2]string{
		{"ID", space.ID},
		{"Key", space.Key},
		{"Name", space.Name},
		{"Type", space.Type},
		{"Status", space.Status},
	}
	for _, row := range rows {
		fmt.Fprintf(rt.Out, "  %s  %s\n",
			cliui.KeyStyle.Render(fmt.Sprintf("%-8s", row[0])),
			cliui.ValueStyle.Render(row[1]),
		)
	}
}
