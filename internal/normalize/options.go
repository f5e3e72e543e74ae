package normalize

// DefaultMaxDepth bounds syntactic nesting (sub-shells, parentheses, embedded
// commands). Input depth is attacker-controlled, so the limit is explicit
// rather than left to stack exhaustion.
const DefaultMaxDepth = 32

// Options tune the corpus-normalization heuristics. The defaults match the
// policy the training corpus was built with; they are policy knobs, not
// correctness switches.
type Options struct {
	// NormalizeDigits replaces every maximal digit run in a token with the
	// numeral placeholder.
	NormalizeDigits bool

	// NormalizeLongPatterns replaces argument tokens containing embedded
	// whitespace with the long-pattern placeholder.
	NormalizeLongPatterns bool

	// RecoverQuotes keeps the quoted source text of a token verbatim instead
	// of the parser's unquoted form.
	RecoverQuotes bool

	// SplitFlags breaks clustered short-option groups into one flag node per
	// character.
	SplitFlags bool

	// MaxDepth bounds syntactic nesting during normalization.
	MaxDepth int
}

// DefaultOptions returns the corpus defaults: all canonicalizations on.
func DefaultOptions() Options {
	return Options{
		NormalizeDigits:       true,
		NormalizeLongPatterns: true,
		RecoverQuotes:         true,
		SplitFlags:            true,
		MaxDepth:              DefaultMaxDepth,
	}
}
