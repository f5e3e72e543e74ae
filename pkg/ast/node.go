package ast

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotAChild is returned when a mutation names a node that is not a
	// child of the receiver.
	ErrNotAChild = errors.New("node is not a child of this parent")

	// ErrInvalidDirection is returned when a process substitution is created
	// with a value other than "<" or ">".
	ErrInvalidDirection = errors.New("process substitution value must be \"<\" or \">\"")
)

// Node is the universal unit of the normalized command tree.
//
// A node owns its children: an ordered sequence whose lifetime follows the
// node. Each child additionally carries non-owning parent and left/right
// sibling references that mirror its position in the parent's sequence. All
// mutation goes through the methods below, which keep the sequence and the
// sibling chain consistent in one step.
type Node struct {
	// Kind is the semantic role of the node.
	Kind Kind

	// Value is the node's literal text: command name, flag spelling, operator
	// spelling, or argument text. Empty for structural nodes.
	Value string

	// ArgType is the semantic argument type. Meaningful only on argument
	// nodes.
	ArgType ArgType

	parent   *Node
	lsb, rsb *Node
	children []*Node
}

// New creates a detached node of the given kind and value.
func New(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// NewRoot creates a fresh tree root.
func NewRoot() *Node {
	return New(KindRoot, "")
}

// NewArgument creates a detached argument leaf with a semantic type.
func NewArgument(value string, argType ArgType) *Node {
	return &Node{Kind: KindArgument, Value: value, ArgType: argType}
}

// NewProcessSubstitution creates a process substitution node. The value must
// be the substitution direction, "<" or ">".
func NewProcessSubstitution(direction string) (*Node, error) {
	if direction != "<" && direction != ">" {
		return nil, errors.Wrapf(ErrInvalidDirection, "got %q", direction)
	}

	return New(KindProcessSubstitution, direction), nil
}

// Parent returns the owning parent, or nil for a detached node or the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// LeftSibling returns the previous child in the parent's sequence, or nil.
func (n *Node) LeftSibling() *Node {
	return n.lsb
}

// RightSibling returns the next child in the parent's sequence, or nil.
func (n *Node) RightSibling() *Node {
	return n.rsb
}

// Children returns the node's ordered child sequence. Callers must treat the
// returned slice as read-only; all mutation goes through Node methods.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// LeftChild returns the first child, or nil.
func (n *Node) LeftChild() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[0]
}

// RightChild returns the last child, or nil.
func (n *Node) RightChild() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[len(n.children)-1]
}

// Attach appends child as the last child of n, updating the parent reference
// and sibling chain. The child must be detached.
func (n *Node) Attach(child *Node) {
	child.parent = n
	child.lsb = n.RightChild()
	child.rsb = nil

	if child.lsb != nil {
		child.lsb.rsb = child
	}

	n.children = append(n.children, child)
}

// Detach removes child from n, healing the sibling chain around it and
// clearing the child's back-references. The child keeps its own subtree.
func (n *Node) Detach(child *Node) error {
	i := n.indexOf(child)
	if i < 0 {
		return errors.Wrapf(ErrNotAChild, "detach %s", child.Symbol())
	}

	if child.lsb != nil {
		child.lsb.rsb = child.rsb
	}

	if child.rsb != nil {
		child.rsb.lsb = child.lsb
	}

	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	child.lsb = nil
	child.rsb = nil

	return nil
}

// ReplaceChild substitutes repl for old at the same position, taking over
// old's siblings. repl must be detached; old is detached afterwards.
func (n *Node) ReplaceChild(old, repl *Node) error {
	i := n.indexOf(old)
	if i < 0 {
		return errors.Wrapf(ErrNotAChild, "replace %s", old.Symbol())
	}

	repl.parent = n
	repl.lsb = old.lsb
	repl.rsb = old.rsb

	if repl.lsb != nil {
		repl.lsb.rsb = repl
	}

	if repl.rsb != nil {
		repl.rsb.lsb = repl
	}

	n.children[i] = repl
	old.parent = nil
	old.lsb = nil
	old.rsb = nil

	return nil
}

// SubstituteParens replaces an adjacent open/close parenthesis marker pair
// with a single node, splicing repl into the child sequence and sibling chain
// at the pair's position. Returns the index at which repl now sits.
func (n *Node) SubstituteParens(lp, rp, repl *Node) (int, error) {
	i := n.indexOf(lp)
	j := n.indexOf(rp)

	if i < 0 || j < 0 {
		return 0, errors.Wrap(ErrNotAChild, "substitute parentheses")
	}

	repl.parent = n
	repl.lsb = lp.lsb
	repl.rsb = rp.rsb

	if repl.lsb != nil {
		repl.lsb.rsb = repl
	}

	if repl.rsb != nil {
		repl.rsb.lsb = repl
	}

	// Drop the markers, highest index first so the lower one stays valid.
	if j < i {
		i, j = j, i
	}

	n.children = append(n.children[:j], n.children[j+1:]...)
	n.children[i] = repl

	for _, marker := range []*Node{lp, rp} {
		marker.parent = nil
		marker.lsb = nil
		marker.rsb = nil
	}

	return i, nil
}

// HeadCommand walks up from the node to the head command it belongs to.
// Returns the node itself for head commands, nil if no head command ancestor
// exists.
func (n *Node) HeadCommand() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Kind == KindHeadCommand {
			return cur
		}
	}

	return nil
}

// Symbol returns the node's linearization symbol: the upper-cased kind and
// the value joined by an underscore (e.g. "FLAG_-name").
func (n *Node) Symbol() string {
	return strings.ToUpper(n.Kind.String()) + "_" + n.Value
}

// Equal reports structural equivalence: same kind, value, argument type, and
// recursively equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.Kind != other.Kind || n.Value != other.Value || n.ArgType != other.ArgType {
		return false
	}

	if len(n.children) != len(other.children) {
		return false
	}

	for i, child := range n.children {
		if !child.Equal(other.children[i]) {
			return false
		}
	}

	return true
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}

	return -1
}
