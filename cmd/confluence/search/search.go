// Package searchcmder implements the CQL search skill, including the local
// query history.
package searchcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/history"
)

// NewSearchCmd returns the search skill command.
func NewSearchCmd() *cobra.Command {
	var (
		limit       int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "search [cql]",
		Short: "Search content with CQL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			configDir, _ := cmd.Flags().GetString("config-dir")
			store, err := history.NewFileStore(configDir, rt.Settings.HistorySize)
			if err != nil {
				return err
			}

			if showHistory {
				return printHistory(rt, store)
			}

			if len(args) == 0 {
				return fmt.Errorf("a CQL query is required unless --history is set")
			}
			cql := args[0]

			results, err := rt.Service.SearchCQL(cmd.Context(), cql, limit)
			if err != nil {
				return err
			}

			if err := store.Append(cql); err != nil {
				rt.Log.Debug("recording search history", "error", err)
			}

			if done, err := rt.JSONOutput(results); done {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no results"))
				return nil
			}
			for _, res := range results {
				fmt.Fprintf(rt.Out, "  %s %s\n",
					cliui.NameStyle.Render(res.Title),
					cliui.DimStyle.Render(fmt.Sprintf("(%s %s)", res.Type, res.ID)),
				)
				if res.Excerpt != "" {
					fmt.Fprintf(rt.Out, "    %s\n", cliui.DimStyle.Render(cliui.Truncate(res.Excerpt, 100)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 25, "Maximum number of results")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show recent queries instead of searching")

	return cmd
}

func printHistory(rt *cmdutil.Runtime, store *history.FileStore) error {
	entries, err := store.Recent(rt.Settings.HistorySize)
	if err != nil {
		return err
	}

	if done, err := rt.JSONOutput(entries); done {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no search history"))
		return nil
	}
	for _, entry := range entries {
		fmt.Fprintf(rt.Out, "  %s %s\n",
			cliui.ValueStyle.Render(entry.Query),
			cliui.DimStyle.Render(entry.RunAt.Format("2006-01-02 15:04")),
		)
	}
	return nil
}
