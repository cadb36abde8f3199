// Package confluencecmder assembles the confluence CLI command tree.
package confluencecmder

import (
	"github.com/spf13/cobra"

	attachmentcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/attachment"
	authcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/auth"
	commentcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/comment"
	configcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/config"
	labelcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/label"
	pagecmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/page"
	restrictioncmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/restriction"
	searchcmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/search"
	spacecmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence/space"
)

const confluenceLongDesc string = `Command-line skills for the Confluence REST API.

Each skill wraps one Confluence operation: pages, spaces, CQL search,
comments, labels, attachments, and content restrictions.

Connection settings live in .confluence/config.toml as named profiles;
API tokens live in .confluence/credentials.toml (or CONFLUENCE_API_TOKEN).

Get started:
  confluence config set profiles.default.base_url https://<site>.atlassian.net/wiki
  confluence config set profiles.default.email you@example.com
  confluence auth set default
  confluence space list`

const confluenceShortDesc string = "Confluence - CLI skills for the Confluence REST API"

func NewConfluenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "confluence",
		Short:         confluenceShortDesc,
		Long:          confluenceLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringP("profile", "p", "", "Site profile to use (defaults to default_profile)")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: text or json")
	cmd.PersistentFlags().String("config-dir", "", "Override the .confluence/ directory")

	// Add subcommands
	cmd.AddCommand(spacecmder.NewSpaceCmd())
	cmd.AddCommand(pagecmder.NewPageCmd())
	cmd.AddCommand(searchcmder.NewSearchCmd())
	cmd.AddCommand(commentcmder.NewCommentCmd())
	cmd.AddCommand(labelcmder.NewLabelCmd())
	cmd.AddCommand(attachmentcmder.NewAttachmentCmd())
	cmd.AddCommand(restrictioncmder.NewRestrictionCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(authcmder.NewAuthCmd())

	return cmd
}
