// Package credentials manages reading and writing credentials.toml in the
// .confluence/ directory: one API token per site profile, with an
// environment-variable fallback for CI use.
package credentials

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
	credentialsFile = "credentials.toml"

	currentVersion = 0

	// EnvToken overrides any stored token when set.
	EnvToken = "CONFLUENCE_API_TOKEN"
)

// Manager manages reading and writing credentials.toml.
type Manager struct {
	ddm        *dotdir.Manager
	targetPath string
}

// NewManager creates a new credentials Manager. If override is non-empty it
// is used as the .confluence/ directory; otherwise the standard dotdir
// resolution applies.
func NewManager(override string) (*Manager, error) {
	mgr := &Manager{}
	mgr.ddm = dotdir.NewManager()

	target, err := mgr.ddm.Target(override)
	if err != nil {
		return nil, err
	}

	mgr.targetPath = filepath.Join(target, credentialsFile)

	return mgr, nil
}

// Load reads credentials.toml from the target directory.
// Returns empty Credentials if the file does not exist.
func (m *Manager) Load() (*Credentials, error) {
	data, err := os.ReadFile(m.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Credentials{
				Version:  currentVersion,
				Profiles: make(map[string]ProfileCredential),
			}, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	creds := &Credentials{}
	if err := toml.Unmarshal(data, creds); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	if creds.Profiles == nil {
		creds.Profiles = make(map[string]ProfileCredential)
	}

	return creds, nil
}

// Save writes credentials to credentials.toml with 0600 permissions.
func (m *Manager) Save(creds *Credentials) error {
	if creds == nil {
		return errors.New("cannot save nil credentials")
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(creds); err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	if err := os.WriteFile(m.targetPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}

	return nil
}

// SetToken stores an API token for the given profile.
func (m *Manager) SetToken(profile, token string) error {
	creds, err := m.Load()
	if err != nil {
		return err
	}

	creds.Profiles[profile] = ProfileCredential{APIToken: token}

	return m.Save(creds)
}

// Token returns the API token for the given profile. The CONFLUENCE_API_TOKEN
// environment variable wins over the stored value; an empty string means no
// credential is available.
func (m *Manager) Token(profile string) (string, error) {
	if env := os.Getenv(EnvToken); env != "" {
		return env, nil
	}

	creds, err := m.Load()
	if err != nil {
		return "", err
	}

	return creds.Profiles[profile].APIToken, nil
}

// RemoveToken deletes the stored token for the given profile.
// Returns an error when no token is stored.
func (m *Manager) RemoveToken(profile string) error {
	creds, err := m.Load()
	if err != nil {
		return err
	}

	if _, ok := creds.Profiles[profile]; !ok {
		return fmt.Errorf("no stored credentials for profile %q", profile)
	}

	delete(creds.Profiles, profile)

	return m.Save(creds)
}

// StoredProfiles returns the profile names with stored tokens, sorted.
func (m *Manager) StoredProfiles() ([]string, error) {
	creds, err := m.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(creds.Profiles))
	for name := range creds.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
