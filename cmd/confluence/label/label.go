// Package labelcmder implements the content label skill commands.
package labelcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

// NewLabelCmd returns the label skill command and its subcommands.
func NewLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Work with content labels",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <page-id>",
		Short: "List labels on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			labels, err := rt.Service.ListLabels(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(labels); done {
				return err
			}

			if len(labels) == 0 {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no labels"))
				return nil
			}
			for _, label := range labels {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.NameStyle.Render(label.Name))
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <page-id> <label>",
		Short: "Add a label to a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			added, err := rt.Service.AddLabel(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(map[string]any{"name": args[1], "added": added}); done {
				return err
			}

			if !added {
				fmt.Fprintf(rt.Out, "  %s already present\n", cliui.NameStyle.Render(args[1]))
				return nil
			}
			fmt.Fprintf(rt.Out, "  %s Added label %s\n", cliui.SuccessMark, cliui.NameStyle.Render(args[1]))
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <page-id> <label>",
		Short: "Remove a label from a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			if err := rt.Service.RemoveLabel(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			if done, err := rt.JSONOutput(map[string]string{"name": args[1], "status": "removed"}); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Removed label %s\n", cliui.SuccessMark, cliui.NameStyle.Render(args[1]))
			return nil
		},
	}
}
