// Package normalize rewrites a generic shell syntax tree into the typed
// command AST: head commands, flags, typed arguments, logic operators,
// pipelines, and substitution forms. The entry point is Normalizer.Normalize;
// the multi-pass rewrite itself lives in command.go.
//
// The flag-splitting and type-inference rules are tuned to an observed
// command corpus rather than derived from a formal shell grammar; Options
// exposes them as overridable policy.
package normalize

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/bashast/internal/grammar"
	"github.com/smykla-labs/bashast/internal/shell"
	"github.com/smykla-labs/bashast/pkg/ast"
	"github.com/smykla-labs/bashast/pkg/logger"
)

// Normalizer turns bash command text into normalized command trees. It holds
// only read-only state and is safe to reuse across commands; each Normalize
// call works on its own tree.
type Normalizer struct {
	parser   *shell.Parser
	resolver *Resolver
	opts     Options
	log      logger.Logger
}

// New creates a Normalizer over the given grammar with the given policy
// options.
func New(g grammar.Lookup, opts Options, log logger.Logger) *Normalizer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Normalizer{
		parser:   shell.NewParser(),
		resolver: NewResolver(g),
		opts:     opts,
		log:      log,
	}
}

// Resolver returns the argument type resolver the Normalizer uses, for
// callers that re-derive argument types outside a normalization run.
func (n *Normalizer) Resolver() *Resolver {
	return n.resolver
}

// Normalize parses and normalizes a single bash command. On success the
// returned root has exactly one child; on failure no tree is returned and the
// error carries the failure classification.
func (n *Normalizer) Normalize(cmd string) (*ast.Node, error) {
	prepared := shell.Prepare(cmd)
	if prepared == "" {
		return nil, shell.ErrEmptyCommand
	}

	syn, err := n.parser.Parse(prepared)
	if err != nil {
		return nil, err
	}

	return n.NormalizeSyntax(syn, prepared)
}

// NormalizeSyntax normalizes an already-parsed syntax tree. src must be the
// prepared source text the tree's word spans index into; it is consulted for
// quote recovery.
func (n *Normalizer) NormalizeSyntax(syn *shell.SynNode, src string) (*ast.Node, error) {
	root := ast.NewRoot()

	r := &run{
		src:      src,
		opts:     n.opts,
		resolver: n.resolver,
		log:      n.log,
	}

	if err := r.normalizeNode(syn, root, 0); err != nil {
		return nil, err
	}

	return root, nil
}

// run carries the per-invocation state shared by the normalization passes.
type run struct {
	src      string
	opts     Options
	resolver *Resolver
	log      logger.Logger
}

// normalizeNode dispatches one generic syntax node, attaching its normalized
// form under current.
func (r *run) normalizeNode(node *shell.SynNode, current *ast.Node, depth int) error {
	if depth > r.opts.MaxDepth {
		return errors.Wrapf(ErrDepthExceeded, "depth %d", depth)
	}

	switch node.Kind {
	case shell.SynCommand:
		return r.normalizeCommand(node, current, depth)

	case shell.SynPipeline:
		return r.normalizePipeline(node, current, depth)

	case shell.SynList:
		if len(node.Parts) > 2 {
			return errors.Wrapf(ErrMultiStatementList, "%d parts", len(node.Parts))
		}

		if len(node.Parts) == 0 {
			return errors.Wrap(ErrUnsupportedConstruct, "empty statement list")
		}

		return r.normalizeNode(node.Parts[0], current, depth)

	case shell.SynCommandSubstitution, shell.SynProcessSubstitution:
		return r.normalizeNode(node.Command, current, depth)

	case shell.SynWord:
		return r.attachWord(node, current, ast.KindArgument, ast.ArgTypeUnknown, depth)

	default:
		return errors.Wrapf(ErrUnsupportedConstruct, "%s", node.Kind)
	}
}

func (r *run) normalizePipeline(node *shell.SynNode, current *ast.Node, depth int) error {
	if len(node.Parts)%2 == 0 {
		return errors.Wrapf(ErrPipelineArity, "%d parts", len(node.Parts))
	}

	pipe := ast.New(ast.KindPipeline, "")
	current.Attach(pipe)

	for _, part := range node.Parts {
		if part.Kind == shell.SynOperator {
			continue
		}

		if err := r.normalizeNode(part, pipe, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// attachWord attaches a leaf word under current with the given role and
// argument type. Compound words carrying expansions become substitution
// nodes (with their embedded commands normalized recursively) or plain typed
// leaves for parameter and tilde forms.
func (r *run) attachWord(
	child *shell.SynNode,
	current *ast.Node,
	kind ast.Kind,
	argType ast.ArgType,
	depth int,
) error {
	if len(child.Parts) == 0 {
		leaf := ast.New(kind, r.normalizeWord(child, kind))
		leaf.ArgType = argType
		current.Attach(leaf)

		return nil
	}

	switch child.Parts[0].Kind {
	case shell.SynProcessSubstitution:
		direction := "<"
		if strings.Contains(child.Word, ">") {
			direction = ">"
		}

		sub, err := ast.NewProcessSubstitution(direction)
		if err != nil {
			return err
		}

		current.Attach(sub)

		return r.attachSubstitutionBodies(child, sub, depth)

	case shell.SynCommandSubstitution:
		sub := ast.New(ast.KindCommandSubstitution, "")
		current.Attach(sub)

		return r.attachSubstitutionBodies(child, sub, depth)

	case shell.SynParameter, shell.SynTilde:
		leaf := ast.New(kind, r.normalizeWord(child, ast.KindArgument))
		leaf.ArgType = argType
		current.Attach(leaf)

		return nil

	default:
		return errors.Wrapf(ErrUnsupportedConstruct, "compound word part %s", child.Parts[0].Kind)
	}
}

func (r *run) attachSubstitutionBodies(child *shell.SynNode, sub *ast.Node, depth int) error {
	for _, part := range child.Parts {
		if part.Command == nil {
			continue
		}

		if err := r.normalizeNode(part.Command, sub, depth+1); err != nil {
			return err
		}
	}

	return nil
}
