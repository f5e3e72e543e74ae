package normalize

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/bashast/internal/grammar"
	"github.com/smykla-labs/bashast/pkg/ast"
)

// Resolver assigns semantic types to argument words: grammar lookups for
// flag-attached arguments, a lexical heuristic for command-attached ones. It
// is read-only and safe to share across normalization runs.
type Resolver struct {
	grammar grammar.Lookup
}

// NewResolver creates a Resolver over the given grammar.
func NewResolver(g grammar.Lookup) *Resolver {
	return &Resolver{grammar: g}
}

// ForFlag resolves the argument type a flag accepts under a head command.
// The second return is false when the flag takes no argument (or is unknown
// to the grammar); the caller must then reattach the word elsewhere.
// Terminator suffixes on embedding flags ("-exec::;") are ignored.
func (r *Resolver) ForFlag(headCmd, flag string) (ast.ArgType, bool) {
	base, _, _ := strings.Cut(flag, "::")

	return r.grammar.FlagArgType(headCmd, base)
}

// ForHeadCommand resolves the type of a word attached directly to a head
// command, using the lexical heuristic over the command's declared argument
// types. The raw word is inspected, before any placeholder substitution.
func (r *Resolver) ForHeadCommand(headCmd, word string) (ast.ArgType, error) {
	possible, ok := r.grammar.PossibleArgTypes(headCmd)
	if !ok {
		return ast.ArgTypeUnknown, errors.Wrapf(ErrUnresolvableArgType,
			"command %q not in grammar", headCmd)
	}

	return TypeCheck(word, possible)
}

// TypeCheck heuristically determines a word's argument type among the types a
// command allows. The unit-letter and first-match rules are corpus policy;
// see the package documentation.
func TypeCheck(word string, possible []ast.ArgType) (ast.ArgType, error) {
	switch word {
	case "+", ";", "{}":
		return ast.ArgTypeReservedWord, nil
	}

	if isAllDigits(word) && allows(possible, ast.ArgTypeNumber) {
		return ast.ArgTypeNumber, nil
	}

	if containsDigit(word) && word != "" {
		switch last := word[len(word)-1]; {
		case strings.ContainsRune("kMGTP", rune(last)) && allows(possible, ast.ArgTypeSize):
			return ast.ArgTypeSize, nil
		case strings.ContainsRune("smhdw", rune(last)) && allows(possible, ast.ArgTypeTime):
			return ast.ArgTypeTime, nil
		}
	}

	for _, candidate := range []ast.ArgType{ast.ArgTypeFile, ast.ArgTypePattern, ast.ArgTypeUtility} {
		if allows(possible, candidate) {
			return candidate, nil
		}
	}

	return ast.ArgTypeUnknown, errors.Wrapf(ErrUnresolvableArgType, "word %q", word)
}

func allows(possible []ast.ArgType, t ast.ArgType) bool {
	for _, p := range possible {
		if p == t {
			return true
		}
	}

	return false
}

func isAllDigits(word string) bool {
	if word == "" {
		return false
	}

	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func containsDigit(word string) bool {
	return strings.ContainsFunc(word, unicode.IsDigit)
}
