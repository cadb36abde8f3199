// Package restrictioncmder implements the page restriction skill commands.
package restrictioncmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

// NewRestrictionCmd returns the restriction skill command and its subcommands.
func NewRestrictionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restriction",
		Short: "Work with page restrictions",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <page-id>",
		Short: "List read and update restrictions on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			restrictions, err := rt.Service.ListRestrictions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(restrictions); done {
				return err
			}

			for _, res := range restrictions {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.HeaderStyle.Render(res.Operation))
				if len(res.Users) == 0 && len(res.Groups) == 0 {
					fmt.Fprintf(rt.Out, "    %s\n", cliui.DimStyle.Render("unrestricted"))
					continue
				}
				if len(res.Users) > 0 {
					fmt.Fprintf(rt.Out, "    %s %s\n",
						cliui.KeyStyle.Render("users:"),
						cliui.ValueStyle.Render(strings.Join(res.Users, ", ")),
					)
				}
				if len(res.Groups) > 0 {
					fmt.Fprintf(rt.Out, "    %s %s\n",
						cliui.KeyStyle.Render("groups:"),
						cliui.ValueStyle.Render(strings.Join(res.Groups, ", ")),
					)
				}
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var (
		operation string
		accountID string
	)

	cmd := &cobra.Command{
		Use:   "add <page-id>",
		Short: "Grant a user a restricted operation on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			added, err := rt.Service.AddUserRestriction(cmd.Context(), args[0], operation, accountID)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(map[string]any{
				"operation": operation,
				"accountId": accountID,
				"added":     added,
			}); done {
				return err
			}

			if !added {
				fmt.Fprintf(rt.Out, "  %s already holds %s\n",
					cliui.NameStyle.Render(accountID),
					cliui.ValueStyle.Render(operation),
				)
				return nil
			}
			fmt.Fprintf(rt.Out, "  %s Granted %s to %s\n",
				cliui.SuccessMark,
				cliui.ValueStyle.Render(operation),
				cliui.NameStyle.Render(accountID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&operation, "operation", "read", "Operation to restrict (read or update)")
	cmd.Flags().StringVar(&accountID, "user", "", "Atlassian account ID (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
