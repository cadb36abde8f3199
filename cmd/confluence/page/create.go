package pagecmder

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

func newCreateCmd() *cobra.Command {
	var (
		spaceID  string
		title    string
		body     string
		bodyFile string
		parentID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			content, err := resolveBody(body, bodyFile)
			if err != nil {
				return err
			}

			page, err := rt.Service.CreatePage(cmd.Context(), spaceID, title, content, parentID)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(page); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Created page %s %s\n",
				cliui.SuccessMark,
				cliui.NameStyle.Render(page.Title),
				cliui.DimStyle.Render("(id "+page.ID+")"),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&spaceID, "space", "", "Numeric space ID (required)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Page title (required)")
	cmd.Flags().StringVar(&body, "body", "", "Page body in storage format")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the page body from a file")
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent page ID")
	_ = cmd.MarkFlagRequired("space")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// resolveBody picks the inline body or reads the body file. Both set is an
// error; neither set yields an empty body.
func resolveBody(body, bodyFile string) (string, error) {
	if body != "" && bodyFile != "" {
		return "", fmt.Errorf("--body and --body-file are mutually exclusive")
	}
	if bodyFile == "" {
		return body, nil
	}

	data, err := os.ReadFile(bodyFile)
	if err != nil {
		return "", fmt.Errorf("reading body file: %w", err)
	}
	return string(data), nil
}
