package normalize

import "github.com/cockroachdb/errors"

// Normalization failure classifications. Each aborts only the current
// command's normalization; no partially mutated tree is ever returned
// alongside one of these.
var (
	// ErrUnsupportedConstruct is returned for syntactically valid input using
	// a shell construct outside the modeled subset: conditionals, loops,
	// functions, assignments, redirection, heredocs, raw parameter nodes.
	ErrUnsupportedConstruct = errors.New("unsupported shell construct")

	// ErrMissingHeadCommand is returned when a command's scan produces no
	// head command, usually because the utility is not in the registry.
	ErrMissingHeadCommand = errors.New("no head command recognized")

	// ErrMultipleHeadCommands is returned when a single atomic command
	// resolves more than one top-level head command.
	ErrMultipleHeadCommands = errors.New("multiple head commands in one command")

	// ErrUnbalancedParentheses is returned when parenthesis markers do not
	// pair up during the scan or the desugaring pass.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrUnresolvableArgType is returned when neither the grammar nor the
	// lexical heuristic can assign a type to an argument word.
	ErrUnresolvableArgType = errors.New("cannot resolve argument type")

	// ErrPipelineArity is returned for a pipeline whose part count is even;
	// parts must alternate command, pipe, command.
	ErrPipelineArity = errors.New("pipeline must have an odd number of parts")

	// ErrMultiStatementList is returned for a statement list of more than two
	// syntactic parts.
	ErrMultiStatementList = errors.New("multi-statement list not supported")

	// ErrDanglingOperator is returned for a binary logic operator missing a
	// left or right sibling to fold.
	ErrDanglingOperator = errors.New("binary logic operator missing an operand")

	// ErrNoAttachPoint is returned when the attach-point walk for a flag
	// reaches a node that cannot own flags.
	ErrNoAttachPoint = errors.New("no valid attach point for flag")

	// ErrDepthExceeded is returned when syntactic nesting exceeds the
	// configured depth limit.
	ErrDepthExceeded = errors.New("nesting depth limit exceeded")
)
