// Package pagecmder provides the page skills: get, create, update, delete,
// children, and tree.
package pagecmder

import (
	"github.com/spf13/cobra"
)

const pageLongDesc string = `Work with Confluence pages.

Page bodies are read and written in Confluence storage format. Use
--body-file to read content from a file, or --body for inline content.

Examples:
  confluence page get 123456
  confluence page get 123456 --render
  confluence page create --space 98304 --title "Release Notes" --body "<p>hello</p>"
  confluence page update 123456 --title "Release Notes v2" --body-file notes.xml
  confluence page delete 123456
  confluence page children 123456
  confluence page tree 123456 --depth 3`

const pageShortDesc string = "Work with Confluence pages"

func NewPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: pageShortDesc,
		Long:  pageLongDesc,
	}

	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newChildrenCmd())
	cmd.AddCommand(newTreeCmd())

	return cmd
}
