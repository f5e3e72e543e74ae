// Package render turns normalized command trees back into token sequences,
// command strings, and abstract templates.
package render

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/bashast/pkg/ast"
)

// Mode selects how arity violations are treated during rendering.
type Mode int

const (
	// Strict fails on any arity violation.
	Strict Mode = iota

	// Loose degrades gracefully: a one-child pipeline renders as its sole
	// child, an under-populated operator renders its children bare. Used for
	// partially formed or reconstructed trees.
	Loose
)

// FlagOrder selects the emission order of a head command's flag children.
type FlagOrder int

const (
	// OriginalOrder keeps flags in tree order.
	OriginalOrder FlagOrder = iota

	// LexicalOrder sorts flag children by their textual value, producing a
	// canonical form where differently-ordered but structurally equivalent
	// commands render identically.
	LexicalOrder
)

// ValueMode selects what argument nodes emit.
type ValueMode int

const (
	// LiteralValues emits each argument's literal text.
	LiteralValues ValueMode = iota

	// TypeValues emits each argument's semantic type tag instead, building
	// abstract command templates. ReservedWord values always render
	// literally.
	TypeValues
)

// ErrArity is returned in strict mode when a node's child count violates its
// kind's shape.
var ErrArity = errors.New("node arity violation")

// Options configure one rendering.
type Options struct {
	Mode      Mode
	FlagOrder FlagOrder
	ValueMode ValueMode
}

// Tokens renders the tree as a flat token sequence under the given options.
func Tokens(node *ast.Node, opts Options) ([]string, error) {
	if node == nil {
		return nil, nil
	}

	r := renderer{opts: opts}

	return r.tokens(node)
}

// Command renders the tree as a space-joined command string with literal
// argument values.
func Command(node *ast.Node, mode Mode, order FlagOrder) (string, error) {
	tokens, err := Tokens(node, Options{Mode: mode, FlagOrder: order, ValueMode: LiteralValues})
	if err != nil {
		return "", err
	}

	return strings.Join(tokens, " "), nil
}

// Template renders the tree as an abstract template: flags sorted
// lexically, argument values replaced by their type tags.
func Template(node *ast.Node, mode Mode) (string, error) {
	tokens, err := Tokens(node, Options{Mode: mode, FlagOrder: LexicalOrder, ValueMode: TypeValues})
	if err != nil {
		return "", err
	}

	return strings.Join(tokens, " "), nil
}

type renderer struct {
	opts Options
}

//nolint:cyclop,funlen // one case per node kind
func (r renderer) tokens(node *ast.Node) ([]string, error) {
	var out []string

	switch node.Kind {
	case ast.KindRoot:
		if err := r.check(node, node.NumChildren() == 1); err != nil {
			return nil, err
		}

		for _, child := range node.Children() {
			tokens, err := r.tokens(child)
			if err != nil {
				return nil, err
			}

			out = append(out, tokens...)
		}

	case ast.KindPipeline:
		return r.pipelineTokens(node)

	case ast.KindCommandSubstitution:
		return r.substitutionTokens(node, "$(")

	case ast.KindProcessSubstitution:
		return r.substitutionTokens(node, node.Value+"(")

	case ast.KindHeadCommand:
		out = append(out, node.Value)

		for _, child := range r.orderedChildren(node) {
			tokens, err := r.tokens(child)
			if err != nil {
				return nil, err
			}

			out = append(out, tokens...)
		}

	case ast.KindFlag:
		return r.flagTokens(node)

	case ast.KindBinaryLogicOp:
		return r.binaryOpTokens(node)

	case ast.KindUnaryLogicOp:
		if err := r.check(node, node.NumChildren() == 1); err != nil {
			return nil, err
		}

		out = append(out, node.Value)

		for _, child := range node.Children() {
			tokens, err := r.tokens(child)
			if err != nil {
				return nil, err
			}

			out = append(out, tokens...)
		}

	case ast.KindArgument:
		return r.argumentTokens(node)
	}

	return out, nil
}

func (r renderer) check(node *ast.Node, ok bool) error {
	if r.opts.Mode == Strict && !ok {
		return errors.Wrapf(ErrArity, "%s with %d children", node.Kind, node.NumChildren())
	}

	return nil
}

func (r renderer) pipelineTokens(node *ast.Node) ([]string, error) {
	if err := r.check(node, node.NumChildren() > 1); err != nil {
		return nil, err
	}

	if node.NumChildren() == 0 {
		return []string{"|"}, nil
	}

	if node.NumChildren() == 1 {
		// Degrade a single-stage pipeline to the stage itself.
		return r.tokens(node.LeftChild())
	}

	var out []string

	for i, child := range node.Children() {
		if i > 0 {
			out = append(out, "|")
		}

		tokens, err := r.tokens(child)
		if err != nil {
			return nil, err
		}

		out = append(out, tokens...)
	}

	return out, nil
}

func (r renderer) substitutionTokens(node *ast.Node, open string) ([]string, error) {
	if err := r.check(node, node.NumChildren() == 1); err != nil {
		return nil, err
	}

	out := []string{open}

	for _, child := range node.Children() {
		tokens, err := r.tokens(child)
		if err != nil {
			return nil, err
		}

		out = append(out, tokens...)
	}

	return append(out, ")"), nil
}

// flagTokens emits the flag's spelling, its argument subtree, and, for
// embedding flags carrying a terminator suffix ("-exec::;"), the terminator
// after the embedded command.
func (r renderer) flagTokens(node *ast.Node) ([]string, error) {
	value, terminator, embeds := strings.Cut(node.Value, "::")

	out := []string{value}

	for _, child := range node.Children() {
		tokens, err := r.tokens(child)
		if err != nil {
			return nil, err
		}

		out = append(out, tokens...)
	}

	if embeds {
		out = append(out, terminator)
	}

	return out, nil
}

func (r renderer) binaryOpTokens(node *ast.Node) ([]string, error) {
	if err := r.check(node, node.NumChildren() > 1); err != nil {
		return nil, err
	}

	var out []string

	if node.NumChildren() < 2 {
		// Children render bare, without the operator or grouping.
		for _, child := range node.Children() {
			tokens, err := r.tokens(child)
			if err != nil {
				return nil, err
			}

			out = append(out, tokens...)
		}

		return out, nil
	}

	out = append(out, `\(`)

	for i, child := range node.Children() {
		if i > 0 {
			out = append(out, node.Value)
		}

		tokens, err := r.tokens(child)
		if err != nil {
			return nil, err
		}

		out = append(out, tokens...)
	}

	return append(out, `\)`), nil
}

func (r renderer) argumentTokens(node *ast.Node) ([]string, error) {
	if err := r.check(node, node.NumChildren() == 0); err != nil {
		return nil, err
	}

	var out []string

	if r.opts.ValueMode == TypeValues && node.ArgType != ast.ArgTypeReservedWord {
		out = append(out, node.ArgType.String())
	} else {
		out = append(out, node.Value)
	}

	if r.opts.Mode == Loose {
		for _, child := range node.Children() {
			tokens, err := r.tokens(child)
			if err != nil {
				return nil, err
			}

			out = append(out, tokens...)
		}
	}

	return out, nil
}

// orderedChildren returns a head command's children in emission order. Under
// lexical ordering the flag children are sorted by value among the positions
// they occupy; non-flag children keep their places.
func (r renderer) orderedChildren(node *ast.Node) []*ast.Node {
	children := node.Children()
	if r.opts.FlagOrder == OriginalOrder {
		return children
	}

	ordered := append([]*ast.Node(nil), children...)

	var flagIdx []int

	for i, child := range ordered {
		if child.Kind == ast.KindFlag {
			flagIdx = append(flagIdx, i)
		}
	}

	flags := make([]*ast.Node, 0, len(flagIdx))
	for _, i := range flagIdx {
		flags = append(flags, ordered[i])
	}

	sort.SliceStable(flags, func(a, b int) bool { return flags[a].Value < flags[b].Value })

	for k, i := range flagIdx {
		ordered[i] = flags[k]
	}

	return ordered
}
