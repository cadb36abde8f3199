package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/grandcamel/confluence-assistant-skills/pkg/dotdir"
)

const (
	configFile = "config.toml"

	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

type Configer struct {
	ddm        *dotdir.Manager
	targetPath string
}

func NewConfiger(override string) (*Configer, error) {
	cfger := &Configer{}

	cfger.ddm = dotdir.NewManager()
	target, err := cfger.ddm.Target(override)
	if err != nil {
		return nil, err
	}

	if target == "" {
		return cfger, nil
	}

	path := filepath.Join(target, configFile)
	_, err = os.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Always set targetPath when the directory exists so SaveConfig
	// can create or overwrite the file.
	cfger.targetPath = path

	return cfger, nil
}

// ValidConfigKeys returns the supported fixed key names plus one
// profiles.<name>.<field> entry per configured profile, in stable order.
func (c *Configer) ValidConfigKeys() []string {
	keys := []string{
		"default_profile",
		"output.format",
		"search.history_size",
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return keys
	}

	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := []string{"base_url", "auth_type", "email", "timeout_seconds"}
	for _, name := range names {
		for _, field := range fields {
			keys = append(keys, fmt.Sprintf("profiles.%s.%s", name, field))
		}
	}

	return keys
}

// IsValidConfigKey returns true if the given key is a supported
// configuration key (fixed or profile-scoped).
func IsValidConfigKey(key string) bool {
	if _, ok := configKeys[key]; ok {
		return true
	}
	_, _, ok := parseProfileKey(key)
	return ok
}

func (c *Configer) GetTarget() string {
	return c.targetPath
}

// LoadConfig loads the configuration from config.toml in the target
// .confluence/ directory. If the file does not exist, returns
// NewDefaultConfig() so callers always receive a fully-populated Config.
// Fields explicitly set in the file override the defaults.
func (c *Configer) LoadConfig() (*Config, error) {
	if c.targetPath == "" {
		return NewDefaultConfig(), nil
	}

	data, err := os.ReadFile(c.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfigTOML(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills zero-value fields in cfg with values from NewDefaultConfig().
func applyDefaults(cfg *Config) {
	defaults := NewDefaultConfig()

	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = defaults.DefaultProfile
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = defaults.Output.Format
	}
	if cfg.Search.HistorySize == 0 {
		cfg.Search.HistorySize = defaults.Search.HistorySize
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}

	for name, profile := range cfg.Profiles {
		if profile.AuthType == "" {
			profile.AuthType = defaultAuthType
		}
		if profile.TimeoutSeconds == 0 {
			profile.TimeoutSeconds = defaultTimeoutSecs
		}
		cfg.Profiles[name] = profile
	}
}

// Profile returns the named profile, or the default profile when name is
// empty. Unknown names are an error listing the configured profiles.
func (cfg *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = cfg.DefaultProfile
	}
	if name == "" {
		name = defaultProfileName
	}

	profile, ok := cfg.Profiles[name]
	if !ok {
		names := make([]string, 0, len(cfg.Profiles))
		for n := range cfg.Profiles {
			names = append(names, n)
		}
		sort.Strings(names)
		return Profile{}, fmt.Errorf("unknown profile %q (configured: %v)", name, names)
	}

	return profile, nil
}

// SaveConfig persists the configuration to config.toml in the target
// .confluence/ directory.
func (c *Configer) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	if c.targetPath == "" {
		return errors.New("cannot save empty target path")
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(c.targetPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// SetConfigValue loads the config, sets the given key to the given value,
// and saves it. Returns an error if the key is not a valid config key.
// Setting a field of an unknown profile creates the profile.
func (c *Configer) SetConfigValue(key string, value string) error {
	cfg, err := c.LoadConfig()
	if err != nil {
		return err
	}

	if info, ok := configKeys[key]; ok {
		if err := info.set(cfg, value); err != nil {
			return err
		}
		return c.SaveConfig(cfg)
	}

	name, field, ok := parseProfileKey(key)
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	profile := cfg.Profiles[name]
	if err := profileFields[field].set(&profile, value); err != nil {
		return err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}
	cfg.Profiles[name] = profile

	return c.SaveConfig(cfg)
}

// GetConfigValue loads the config and returns the string representation of
// the given key. Returns an error if the key is not a valid config key.
func (c *Configer) GetConfigValue(key string) (string, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return "", err
	}

	if info, ok := configKeys[key]; ok {
		return info.get(cfg), nil
	}

	name, field, ok := parseProfileKey(key)
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}

	profile, ok := cfg.Profiles[name]
	if !ok {
		return "", fmt.Errorf("unknown profile %q", name)
	}

	return profileFields[field].get(&profile), nil
}

// ParseConfigTOML parses raw TOML bytes into a Config.
// Returns an error if the version field is present and not equal to CurrentV.
func ParseConfigTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}

	if cfg.Version != 0 && cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}
