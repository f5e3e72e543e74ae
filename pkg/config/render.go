package config

// Rendering mode, flag order, and value mode names accepted in
// configuration.
const (
	ModeStrict = "strict"
	ModeLoose  = "loose"

	FlagOrderOriginal = "original"
	FlagOrderLexical  = "lexical"

	ValuesLiteral = "literal"
	ValuesType    = "type"
)

// RenderConfig configures output rendering.
type RenderConfig struct {
	// Mode is "strict" or "loose".
	Mode *string `json:"mode,omitempty" koanf:"mode" toml:"mode"`

	// FlagOrder is "original" or "lexical".
	FlagOrder *string `json:"flag_order,omitempty" koanf:"flag_order" toml:"flag_order"`

	// Values is "literal" or "type".
	Values *string `json:"values,omitempty" koanf:"values" toml:"values"`
}

// GetMode returns the rendering mode, defaulting to strict.
func (c *RenderConfig) GetMode() string {
	if c == nil || c.Mode == nil {
		return ModeStrict
	}

	return *c.Mode
}

// GetFlagOrder returns the flag emission order, defaulting to original.
func (c *RenderConfig) GetFlagOrder() string {
	if c == nil || c.FlagOrder == nil {
		return FlagOrderOriginal
	}

	return *c.FlagOrder
}

// GetValues returns the argument value mode, defaulting to literal.
func (c *RenderConfig) GetValues() string {
	if c == nil || c.Values == nil {
		return ValuesLiteral
	}

	return *c.Values
}
