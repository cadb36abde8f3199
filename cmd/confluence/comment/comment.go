// Package commentcmder implements the footer comment skill commands.
package commentcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

// NewCommentCmd returns the comment skill command and its subcommands.
func NewCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Work with page footer comments",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <page-id>",
		Short: "List footer comments on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			comments, err := rt.Service.ListFooterComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(comments); done {
				return err
			}

			if len(comments) == 0 {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no comments"))
				return nil
			}
			for _, c := range comments {
				fmt.Fprintf(rt.Out, "  %s %s\n",
					cliui.DimStyle.Render("#"+c.ID),
					cliui.ValueStyle.Render(cliui.Truncate(c.Body, 100)),
				)
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "add <page-id>",
		Short: "Add a footer comment to a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			comment, err := rt.Service.AddFooterComment(cmd.Context(), args[0], body)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(comment); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Added comment %s\n",
				cliui.SuccessMark,
				cliui.DimStyle.Render("#"+comment.ID),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&body, "body", "b", "", "Comment body in storage format (required)")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}
