package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/grandcamel/confluence-assistant-skills/pkg/dotdir"
)

// Settings is the fully-resolved effective configuration for one invocation:
// the selected profile's connection values after environment overrides.
type Settings struct {
	Profile     string
	BaseURL     string
	AuthType    string
	Email       string
	Timeout     time.Duration
	Output      string
	HistorySize int
}

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the CONFLUENCE_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (applied by Resolve's callers)
//  2. Environment variables (CONFLUENCE_SITE_BASE_URL, CONFLUENCE_PROFILE, ...)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("CONFLUENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("profile", "")
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("search.history_size", d.Search.HistorySize)

	// Site overrides apply on top of whichever profile is selected.
	v.SetDefault("site.base_url", "")
	v.SetDefault("site.auth_type", "")
	v.SetDefault("site.email", "")
	v.SetDefault("site.timeout_seconds", 0)
}

// Resolve merges the config file, environment, and the profile/output flags
// into effective Settings. profileFlag and outputFlag win when non-empty.
func Resolve(configDir, profileFlag, outputFlag string) (Settings, error) {
	v, err := InitViper(configDir)
	if err != nil {
		return Settings{}, err
	}

	cfger, err := NewConfiger(configDir)
	if err != nil {
		return Settings{}, err
	}

	cfg, err := cfger.LoadConfig()
	if err != nil {
		return Settings{}, err
	}

	profileName := profileFlag
	if profileName == "" {
		profileName = v.GetString("profile")
	}

	profile, err := cfg.Profile(profileName)
	if err != nil {
		return Settings{}, err
	}
	if profileName == "" {
		profileName = cfg.DefaultProfile
	}

	// Environment overrides on top of the selected profile.
	if base := v.GetString("site.base_url"); base != "" {
		profile.BaseURL = base
	}
	if auth := v.GetString("site.auth_type"); auth != "" {
		profile.AuthType = auth
	}
	if email := v.GetString("site.email"); email != "" {
		profile.Email = email
	}
	if timeout := v.GetInt("site.timeout_seconds"); timeout > 0 {
		profile.TimeoutSeconds = timeout
	}

	output := outputFlag
	if output == "" {
		output = v.GetString("output.format")
	}
	if output != "text" && output != "json" {
		return Settings{}, fmt.Errorf("invalid output format %q (expected text or json)", output)
	}

	return Settings{
		Profile:     profileName,
		BaseURL:     profile.BaseURL,
		AuthType:    profile.AuthType,
		Email:       profile.Email,
		Timeout:     time.Duration(profile.TimeoutSeconds) * time.Second,
		Output:      output,
		HistorySize: cfg.Search.HistorySize,
	}, nil
}
