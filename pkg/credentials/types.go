package credentials

// Credentials represents the stored API tokens in credentials.toml.
type Credentials struct {
	Version  int                          `toml:"version"`
	Profiles map[string]ProfileCredential `toml:"profiles"`
}

// ProfileCredential holds the API token for a single site profile.
type ProfileCredential struct {
	APIToken string `toml:"api_token"`
}
