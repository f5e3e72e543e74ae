package config

// BatchConfig configures corpus batch processing.
type BatchConfig struct {
	// Workers is the number of concurrent normalization workers. Zero means
	// one worker per CPU.
	Workers *int `json:"workers,omitempty" koanf:"workers" toml:"workers"`

	// FailFast stops the batch on the first normalization failure instead
	// of skipping the input.
	FailFast *bool `json:"fail_fast,omitempty" koanf:"fail_fast" toml:"fail_fast"`
}

// GetWorkers returns the worker count; zero means one per CPU.
func (c *BatchConfig) GetWorkers() int {
	if c == nil || c.Workers == nil || *c.Workers < 0 {
		return 0
	}

	return *c.Workers
}

// IsFailFastEnabled returns whether a failure aborts the batch. Defaults to
// false: bad inputs are skipped and logged.
func (c *BatchConfig) IsFailFastEnabled() bool {
	if c == nil || c.FailFast == nil {
		return false
	}

	return *c.FailFast
}
