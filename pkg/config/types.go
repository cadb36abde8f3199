package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config represents the persistent CLI configuration stored as config.toml
// in the .confluence/ directory. Sites are organized as named profiles so
// one install can talk to several Confluence instances.
type Config struct {
	Version        int                `toml:"version"`
	DefaultProfile string             `toml:"default_profile,omitempty"`
	Output         OutputConfig       `toml:"output"`
	Search         SearchConfig       `toml:"search"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// Profile holds the connection settings for one Confluence site.
type Profile struct {
	BaseURL        string `toml:"base_url,omitempty"`
	AuthType       string `toml:"auth_type,omitempty"`
	Email          string `toml:"email,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

// OutputConfig holds display settings shared by all skills.
type OutputConfig struct {
	Format string `toml:"format,omitempty"`
}

// SearchConfig holds CQL search settings.
type SearchConfig struct {
	HistorySize int `toml:"history_size,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of fixed config keys. Profile keys
// (profiles.<name>.<field>) are handled separately in profileKeyInfo.
var configKeys = map[string]configKeyInfo{
	"default_profile": {
		get: func(c *Config) string { return c.DefaultProfile },
		set: func(c *Config, v string) error { c.DefaultProfile = v; return nil },
	},
	"output.format": {
		get: func(c *Config) string { return c.Output.Format },
		set: func(c *Config, v string) error {
			if v != "text" && v != "json" {
				return fmt.Errorf("invalid value for output.format: %q (expected text or json)", v)
			}
			c.Output.Format = v
			return nil
		},
	},
	"search.history_size": {
		get: func(c *Config) string {
			if c.Search.HistorySize == 0 {
				return ""
			}
			return strconv.Itoa(c.Search.HistorySize)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value for search.history_size: %q", v)
			}
			c.Search.HistorySize = n
			return nil
		},
	},
}

// profileFields maps the per-profile field names usable in dotted keys.
var profileFields = map[string]struct {
	get func(p *Profile) string
	set func(p *Profile, v string) error
}{
	"base_url": {
		get: func(p *Profile) string { return p.BaseURL },
		set: func(p *Profile, v string) error { p.BaseURL = v; return nil },
	},
	"auth_type": {
		get: func(p *Profile) string { return p.AuthType },
		set: func(p *Profile, v string) error {
			if v != "basic" && v != "bearer" {
				return fmt.Errorf("invalid value for auth_type: %q (expected basic or bearer)", v)
			}
			p.AuthType = v
			return nil
		},
	},
	"email": {
		get: func(p *Profile) string { return p.Email },
		set: func(p *Profile, v string) error { p.Email = v; return nil },
	},
	"timeout_seconds": {
		get: func(p *Profile) string {
			if p.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.Itoa(p.TimeoutSeconds)
		},
		set: func(p *Profile, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid value for timeout_seconds: %q", v)
			}
			p.TimeoutSeconds = n
			return nil
		},
	},
}

// parseProfileKey splits a "profiles.<name>.<field>" key into its parts.
func parseProfileKey(key string) (name, field string, ok bool) {
	rest, found := strings.CutPrefix(key, "profiles.")
	if !found {
		return "", "", false
	}

	name, field, found = strings.Cut(rest, ".")
	if !found || name == "" {
		return "", "", false
	}
	if _, known := profileFields[field]; !known {
		return "", "", false
	}

	return name, field, true
}
