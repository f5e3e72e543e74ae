// Package config provides configuration schema types for the bashast
// toolchain. All fields are pointers so that merged sources can distinguish
// "unset" from an explicit value; the accessor methods apply defaults.
package config

// Config is the root configuration.
type Config struct {
	// Normalize configures the normalization policy.
	Normalize *NormalizeConfig `json:"normalize,omitempty" koanf:"normalize" toml:"normalize"`

	// Render configures output rendering.
	Render *RenderConfig `json:"render,omitempty" koanf:"render" toml:"render"`

	// Batch configures corpus batch processing.
	Batch *BatchConfig `json:"batch,omitempty" koanf:"batch" toml:"batch"`

	// Log configures diagnostics output.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log"`
}
