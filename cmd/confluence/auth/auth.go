// Package authcmder provides the auth command for storing API tokens.
package authcmder

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/credentials"
)

const authLongDesc string = `Store Confluence API tokens per profile.

Tokens are stored in credentials.toml in the .confluence/ directory with
owner-only permissions, keyed by profile name. The ` + credentials.EnvToken + `
environment variable takes precedence over the stored token when set.

Create an API token at id.atlassian.com/manage-profile/security/api-tokens.

Examples:
  confluence auth set                  Prompt for the default profile's token
  confluence auth set staging          Prompt for the staging profile's token
  confluence auth status               List profiles with stored tokens
  confluence auth remove staging       Remove the staging profile's token
  echo $TOKEN | confluence auth set    Pipe the token from stdin`

const authShortDesc string = "Store Confluence API tokens"

func NewAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: authShortDesc,
		Long:  authLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newRemoveCmd())

	return cmd
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [profile]",
		Short: "Store an API token for a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runSet(profileArg(args), configDir)
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List profiles with stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runStatus(configDir)
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [profile]",
		Short: "Remove a profile's stored token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runRemove(profileArg(args), configDir)
		},
	}
}

func profileArg(args []string) string {
	if len(args) == 0 {
		return "default"
	}
	return strings.TrimSpace(args[0])
}

func runSet(profile, configDir string) error {
	token, err := readToken(profile)
	if err != nil {
		return err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("API token cannot be empty")
	}

	mgr, err := credentials.NewManager(configDir)
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	if err := mgr.SetToken(profile, token); err != nil {
		return err
	}

	fmt.Printf("\n  %s Stored token for profile %s\n\n",
		cliui.SuccessMark,
		cliui.NameStyle.Render(profile),
	)
	return nil
}

func runStatus(configDir string) error {
	mgr, err := credentials.NewManager(configDir)
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	profiles, err := mgr.StoredProfiles()
	if err != nil {
		return err
	}

	if envToken := os.Getenv(credentials.EnvToken); envToken != "" {
		fmt.Printf("\n  %s %s is set and overrides stored tokens.\n",
			cliui.WarnStyle.Render("!"),
			cliui.KeyStyle.Render(credentials.EnvToken),
		)
	}

	if len(profiles) == 0 {
		fmt.Printf("\n  %s No stored tokens.\n", cliui.DimStyle.Render("●"))
		fmt.Printf("  Use 'confluence auth set [profile]' to store one.\n\n")
		return nil
	}

	fmt.Printf("\n  %s\n\n", cliui.HeaderStyle.Render("Stored tokens"))
	for _, p := range profiles {
		fmt.Printf("  %s  %s\n", cliui.SuccessMark, cliui.NameStyle.Render(p))
	}
	fmt.Println()

	return nil
}

func runRemove(profile, configDir string) error {
	mgr, err := credentials.NewManager(configDir)
	if err != nil {
		return fmt.Errorf("loading credentials: %w", err)
	}

	if err := mgr.RemoveToken(profile); err != nil {
		return err
	}

	fmt.Printf("\n  %s Removed token for profile %s\n\n",
		cliui.SuccessMark,
		cliui.NameStyle.Render(profile),
	)

	return nil
}

// readToken reads an API token from stdin. If stdin is a pipe, it reads the
// first line. Otherwise, it prompts interactively with hidden input.
func readToken(profile string) (string, error) {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}

	// Piped input
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return "", errors.New("no input received on stdin")
	}

	// Interactive terminal
	fmt.Printf("Enter API token for profile %s: ", profile)

	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading API token: %w", err)
	}

	return string(tokenBytes), nil
}
