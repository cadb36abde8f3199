// Package configcmder provides the config command for managing persistent
// skill configuration stored in the .confluence/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent skill configuration.

Configuration is stored as config.toml in the .confluence/ directory and
provides default values for command flags. CLI flags always take precedence
over config file values, and CONFLUENCE_* environment variables take
precedence over the file.

Keys use dotted notation matching the TOML section structure:
  default_profile, output.format, search.history_size,
  profiles.<name>.base_url, profiles.<name>.auth_type,
  profiles.<name>.email, profiles.<name>.timeout_seconds

Use subcommands to get, set, or list configuration values:
  confluence config set <key> <value>    Set a configuration value
  confluence config get <key>            Get a configuration value
  confluence config list                 List all configuration values

Examples:
  confluence config set profiles.default.base_url https://example.atlassian.net/wiki
  confluence config set output.format json
  confluence config get default_profile
  confluence config list`

const configShortDesc string = "Manage persistent skill configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
