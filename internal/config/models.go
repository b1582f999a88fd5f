package config

// Config represents the entire crewfile configuration file.
// It stores where the roster lives and how the CLI renders it.
type Config struct {
	Version int            `yaml:"version"`
	Storage *StorageConfig `yaml:"storage,omitempty"`
	Output  *OutputPrefs   `yaml:"output,omitempty"`
}

// StorageConfig controls where the roster file is kept.
type StorageConfig struct {
	Path string `yaml:"path,omitempty"` // Roster file path; empty means the default location
}

// OutputPrefs represents CLI rendering preferences.
type OutputPrefs struct {
	Format string `yaml:"format,omitempty"` // Default output format: "table", "plain" or "json"
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Storage: &StorageConfig{},
		Output: &OutputPrefs{
			Format: "table",
		},
	}
}

// StorePath returns the configured roster file path, or the default
// location when none is configured.
func (c *Config) StorePath() (string, error) {
	if c.Storage != nil && c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return DefaultStorePath()
}

// Format returns the configured output format, defaulting to "table".
func (c *Config) Format() string {
	if c.Output != nil && c.Output.Format != "" {
		return c.Output.Format
	}
	return "table"
}
