package config

// LogConfig configures diagnostics output.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level *string `json:"level,omitempty" koanf:"level" toml:"level"`
}

// GetLevel returns the log level, defaulting to "info".
func (c *LogConfig) GetLevel() string {
	if c == nil || c.Level == nil {
		return "info"
	}

	return *c.Level
}
