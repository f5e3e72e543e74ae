// Package codec converts normalized command trees to and from flat symbol
// sequences. The encoding is self-delimiting: every node emits its symbol in
// pre-order, followed by one terminator after its children, so arbitrary
// branching factors need no explicit counts.
package codec

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/bashast/internal/normalize"
	"github.com/smykla-labs/bashast/pkg/ast"
	"github.com/smykla-labs/bashast/pkg/logger"
)

// Terminator is the symbol emitted after a node's children.
const Terminator = "<NO_EXPAND>"

var (
	// ErrEmptySequence is returned when delinearizing an empty sequence.
	ErrEmptySequence = errors.New("empty symbol sequence")

	// ErrBadSymbol is returned for a symbol that does not encode a known
	// node kind.
	ErrBadSymbol = errors.New("malformed symbol")
)

// Codec linearizes trees and reconstructs them. Argument types are not
// carried in the linear form: they are a pure function of grammar and
// attachment context, so reconstruction re-derives them through the
// resolver and grammar updates transparently apply to stored sequences.
type Codec struct {
	resolver *normalize.Resolver
	log      logger.Logger
}

// New creates a Codec that re-derives argument types through resolver.
func New(resolver *normalize.Resolver, log logger.Logger) *Codec {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Codec{resolver: resolver, log: log}
}

// Linearize encodes a tree as a flat symbol sequence in depth-first
// pre-order, one terminator per node after its children.
func Linearize(node *ast.Node) []string {
	return linearize(node, nil)
}

func linearize(node *ast.Node, out []string) []string {
	out = append(out, node.Symbol())

	for _, child := range node.Children() {
		out = linearize(child, out)
	}

	return append(out, Terminator)
}

// Delinearize replays a symbol sequence into a tree. The first symbol is the
// root; the terminator pops the cursor to its parent; any other symbol
// becomes a new node attached under the cursor, which then descends into it.
func (c *Codec) Delinearize(symbols []string) (*ast.Node, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptySequence
	}

	root := ast.NewRoot()
	current := root

	for _, symbol := range symbols[1:] {
		if current == nil {
			break
		}

		if symbol == Terminator {
			current = current.Parent()

			continue
		}

		node, err := c.decodeSymbol(symbol, current)
		if err != nil {
			return nil, err
		}

		current.Attach(node)
		current = node
	}

	return root, nil
}

func (c *Codec) decodeSymbol(symbol string, current *ast.Node) (*ast.Node, error) {
	kindText, value, found := strings.Cut(symbol, "_")
	if !found {
		return nil, errors.Wrapf(ErrBadSymbol, "%q", symbol)
	}

	kind, err := ast.KindString(strings.ToLower(kindText))
	if err != nil {
		return nil, errors.Wrapf(ErrBadSymbol, "%q", symbol)
	}

	node := ast.New(kind, value)
	if kind == ast.KindArgument {
		node.ArgType = c.resolveArgType(value, current)
	}

	return node, nil
}

// resolveArgType re-derives an argument node's type from its attachment
// context. Resolution failures degrade to Unknown with a warning; a stored
// sequence must always reconstruct.
func (c *Codec) resolveArgType(value string, current *ast.Node) ast.ArgType {
	switch current.Kind {
	case ast.KindFlag:
		head := current.HeadCommand()
		if head == nil {
			break
		}

		if argType, ok := c.resolver.ForFlag(head.Value, current.Value); ok {
			return argType
		}

		return ast.ArgTypeUnknown

	case ast.KindHeadCommand:
		argType, err := c.resolver.ForHeadCommand(current.Value, value)
		if err != nil {
			c.log.Warn("cannot re-derive argument type", "word", value, "command", current.Value)

			return ast.ArgTypeUnknown
		}

		return argType
	}

	c.log.Warn("argument attached to unexpected node", "word", value, "attach_point", current.Symbol())

	return ast.ArgTypeUnknown
}
