package config

const (
	defaultProfileName   = "default"
	defaultAuthType      = "basic"
	defaultTimeoutSecs   = 30
	defaultOutputFormat  = "text"
	defaultHistoryLength = 50
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version:        CurrentV,
		DefaultProfile: defaultProfileName,
		Output: OutputConfig{
			Format: defaultOutputFormat,
		},
		Search: SearchConfig{
			HistorySize: defaultHistoryLength,
		},
		Profiles: map[string]Profile{
			defaultProfileName: {
				AuthType:       defaultAuthType,
				TimeoutSeconds: defaultTimeoutSecs,
			},
		},
	}
}
