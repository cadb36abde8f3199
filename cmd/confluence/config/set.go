package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/config"
)

const setLongDesc string = `Set a configuration value.

Sets the given key to the provided value in the config.toml file
stored in the .confluence/ directory. Keys use dotted notation matching
the TOML section structure. Setting a profiles.<name>.* key creates the
profile if it does not exist.

Valid keys:
  default_profile, output.format, search.history_size,
  profiles.<name>.base_url, profiles.<name>.auth_type,
  profiles.<name>.email, profiles.<name>.timeout_seconds

Examples:
  confluence config set profiles.default.base_url https://example.atlassian.net/wiki
  confluence config set profiles.staging.auth_type bearer
  confluence config set search.history_size 100`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: setShortDesc,
		Long:  setLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runSet(args[0], args[1], configDir)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return completeKeys(cmd), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	return cmd
}

func runSet(key, value, configDir string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(keyNames(configDir), ", "))
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	target := cfger.GetTarget()
	if target != "" {
		fmt.Printf("\n  %s %s\n\n",
			cliui.KeyStyle.Render("Config file:"),
			cliui.DimStyle.Render(target),
		)
	} else {
		fmt.Printf("\n  %s\n\n", cliui.DimStyle.Render("No config file found. Using defaults."))
	}

	err = cfger.SetConfigValue(key, value)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Set %s = %s\n\n",
		cliui.SuccessMark,
		cliui.KeyStyle.Render(key),
		cliui.ValueStyle.Render(value),
	)
	return nil
}

func completeKeys(cmd *cobra.Command) []string {
	configDir, _ := cmd.Flags().GetString("config-dir")
	return keyNames(configDir)
}

func keyNames(configDir string) []string {
	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return nil
	}
	return cfger.ValidConfigKeys()
}
