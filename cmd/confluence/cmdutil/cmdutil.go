// Package cmdutil wires the shared runtime for skill commands: resolved
// settings, credentials, the API client facade, and the logger.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/config"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
	"github.com/grandcamel/confluence-assistant-skills/pkg/credentials"
	"github.com/grandcamel/confluence-assistant-skills/pkg/logger"
)

// Runtime bundles everything a skill command needs at run time.
type Runtime struct {
	Settings config.Settings
	Service  *confluence.Service
	Log      *slog.Logger
	Out      io.Writer
}

// NewRuntime resolves the persistent flags on cmd (config-dir, profile,
// output, debug), loads config and credentials, and constructs the service.
// No network calls are made here.
func NewRuntime(cmd *cobra.Command) (*Runtime, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	profile, _ := cmd.Flags().GetString("profile")
	output, _ := cmd.Flags().GetString("output")
	debug, _ := cmd.Flags().GetBool("debug")

	settings, err := config.Resolve(configDir, profile, output)
	if err != nil {
		return nil, err
	}

	if settings.BaseURL == "" {
		return nil, fmt.Errorf(
			"no base URL configured for profile %q\n\nSet one with:\n  confluence config set profiles.%s.base_url https://<site>.atlassian.net/wiki",
			settings.Profile, settings.Profile)
	}

	creds, err := credentials.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	token, err := creds.Token(settings.Profile)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf(
			"no API token for profile %q\n\nStore one with:\n  confluence auth set %s\nor export %s",
			settings.Profile, settings.Profile, credentials.EnvToken)
	}

	api, err := client.New(client.Config{
		BaseURL:  settings.BaseURL,
		AuthType: client.AuthType(settings.AuthType),
		Email:    settings.Email,
		APIToken: token,
		Timeout:  settings.Timeout,
	})
	if err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithPretty(true),
		logger.WithDebug(debug),
		logger.WithWriter(cmd.ErrOrStderr()),
	)

	return &Runtime{
		Settings: settings,
		Service:  confluence.NewService(api, log),
		Log:      log,
		Out:      cmd.OutOrStdout(),
	}, nil
}

// JSONOutput reports whether --output json is in effect, printing v when it
// is. Commands call this first and fall through to text rendering otherwise.
func (r *Runtime) JSONOutput(v any) (bool, error) {
	if r.Settings.Output != "json" {
		return false, nil
	}
	return true, cliui.PrintJSON(r.Out, v)
}
