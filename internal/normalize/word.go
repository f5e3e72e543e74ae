package normalize

import (
	"regexp"
	"strings"

	"github.com/smykla-labs/bashast/internal/shell"
	"github.com/smykla-labs/bashast/pkg/ast"
)

// Placeholder symbols substituted into token values during canonicalization.
const (
	// NumberPlaceholder replaces maximal digit runs.
	NumberPlaceholder = "_NUM"

	// LongPatternPlaceholder replaces argument tokens with embedded
	// whitespace.
	LongPatternPlaceholder = "_LONG_PATTERN"
)

var digitRun = regexp.MustCompile(`\d+`)

// normalizeWord produces the normalized string value of a leaf token for the
// given role. Quoting anomalies are logged, never fatal: processing continues
// with the raw text.
func (r *run) normalizeWord(node *shell.SynNode, role ast.Kind) string {
	word := node.Word
	if r.opts.RecoverQuotes && r.quoted(node) {
		word = r.src[node.Pos.Start:node.Pos.End]
	}

	if role == ast.KindArgument && strings.Contains(word, " ") {
		if !strings.HasPrefix(word, `"`) || !strings.HasSuffix(word, `"`) {
			r.log.Warn("space inside unquoted word", "word", word)
		}

		if r.opts.NormalizeLongPatterns {
			word = LongPatternPlaceholder
		}
	}

	if r.opts.NormalizeDigits {
		word = digitRun.ReplaceAllString(word, NumberPlaceholder)
	}

	return word
}

// normalizeText canonicalizes synthesized token text that has no source span,
// such as the per-character flags produced by splitting a clustered group.
func (r *run) normalizeText(text string) string {
	if r.opts.NormalizeDigits {
		return digitRun.ReplaceAllString(text, NumberPlaceholder)
	}

	return text
}

// quoted reports whether the token's source span is delimited by a double
// quote on either side.
func (r *run) quoted(node *shell.SynNode) bool {
	start, end := node.Pos.Start, node.Pos.End
	if start < 0 || end <= start || end > len(r.src) {
		return false
	}

	return r.src[start] == '"' || r.src[end-1] == '"'
}
