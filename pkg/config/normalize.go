package config

// DefaultMaxDepth bounds syntactic nesting during normalization.
const DefaultMaxDepth = 32

// NormalizeConfig configures the normalization policy knobs. The defaults
// match the policy the training corpus was built with.
type NormalizeConfig struct {
	// Digits replaces digit runs in tokens with the numeral placeholder.
	Digits *bool `json:"digits,omitempty" koanf:"digits" toml:"digits"`

	// LongPatterns replaces whitespace-bearing arguments with the
	// long-pattern placeholder.
	LongPatterns *bool `json:"long_patterns,omitempty" koanf:"long_patterns" toml:"long_patterns"`

	// RecoverQuotes keeps quoted source text verbatim.
	RecoverQuotes *bool `json:"recover_quotes,omitempty" koanf:"recover_quotes" toml:"recover_quotes"`

	// SplitFlags breaks clustered short-option groups into one flag each.
	SplitFlags *bool `json:"split_flags,omitempty" koanf:"split_flags" toml:"split_flags"`

	// MaxDepth bounds syntactic nesting.
	MaxDepth *int `json:"max_depth,omitempty" koanf:"max_depth" toml:"max_depth"`
}

// IsDigitsEnabled returns whether digit canonicalization is on. Defaults to
// true.
func (c *NormalizeConfig) IsDigitsEnabled() bool {
	if c == nil || c.Digits == nil {
		return true
	}

	return *c.Digits
}

// IsLongPatternsEnabled returns whether long-pattern canonicalization is on.
// Defaults to true.
func (c *NormalizeConfig) IsLongPatternsEnabled() bool {
	if c == nil || c.LongPatterns == nil {
		return true
	}

	return *c.LongPatterns
}

// IsRecoverQuotesEnabled returns whether quote recovery is on. Defaults to
// true.
func (c *NormalizeConfig) IsRecoverQuotesEnabled() bool {
	if c == nil || c.RecoverQuotes == nil {
		return true
	}

	return *c.RecoverQuotes
}

// IsSplitFlagsEnabled returns whether clustered flag splitting is on.
// Defaults to true.
func (c *NormalizeConfig) IsSplitFlagsEnabled() bool {
	if c == nil || c.SplitFlags == nil {
		return true
	}

	return *c.SplitFlags
}

// GetMaxDepth returns the nesting depth limit, defaulting to
// DefaultMaxDepth.
func (c *NormalizeConfig) GetMaxDepth() int {
	if c == nil || c.MaxDepth == nil || *c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return *c.MaxDepth
}
