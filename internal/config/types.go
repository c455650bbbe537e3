package config

// Config represents the full todotui configuration document.
type Config struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Theme   ThemeConfig   `yaml:"theme,omitempty"`
	API     APIConfig     `yaml:"api,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ThemeConfig controls the presentation defaults applied at startup.
type ThemeConfig struct {
	// DefaultMode seeds the dark-mode flag on first run only; a
	// persisted preference always wins afterwards.
	DefaultMode string `yaml:"default_mode,omitempty" validate:"omitempty,oneof=light dark"`
}

// APIConfig describes the remote todo endpoint.
type APIConfig struct {
	Endpoint       string `yaml:"endpoint,omitempty" validate:"omitempty,endpoint_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1.0.0"
	}
	if c.Theme.DefaultMode == "" {
		c.Theme.DefaultMode = "light"
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Default returns a configuration with every default applied. Used
// when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}
