// Package grammar provides the per-utility argument grammar: which argument
// types a head command accepts positionally, and which type (if any) each of
// its flags accepts.
package grammar

import "github.com/smykla-labs/bashast/pkg/ast"

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_lookup.go -package=mocks github.com/smykla-labs/bashast/internal/grammar Lookup

// Lookup answers argument-grammar queries for head commands. Implementations
// are read-only and safe to share across normalization invocations.
type Lookup interface {
	// PossibleArgTypes returns the set of argument types cmd accepts for its
	// positional arguments. ok is false when the command is not in the
	// grammar.
	PossibleArgTypes(cmd string) (types []ast.ArgType, ok bool)

	// FlagArgType returns the argument type that flag accepts under cmd. ok
	// is false when the flag takes no argument or is not in the grammar.
	FlagArgType(cmd, flag string) (argType ast.ArgType, ok bool)
}
