package normalize

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/bashast/internal/registry"
	"github.com/smykla-labs/bashast/internal/shell"
	"github.com/smykla-labs/bashast/pkg/ast"
)

var binaryLogicWords = map[string]struct{}{
	"-and": {},
	"-or":  {},
	"&&":   {},
	"||":   {},
	"-o":   {},
	"-a":   {},
}

func isUnaryLogicWord(word string) bool {
	return word == "!" || word == "-not"
}

func isBinaryLogicWord(word string) bool {
	_, ok := binaryLogicWords[word]

	return ok
}

func underFind(attachPoint *ast.Node) bool {
	return attachPoint != nil &&
		attachPoint.Kind == ast.KindHeadCommand &&
		attachPoint.Value == "find"
}

// isUnaryLogicOp reports whether word acts as a unary logic operator at the
// given attach point. "!" is an operator only under find; elsewhere it is an
// ordinary flag.
func isUnaryLogicOp(word string, attachPoint *ast.Node) bool {
	if word == "!" {
		return underFind(attachPoint)
	}

	return isUnaryLogicWord(word)
}

// binaryLogicValue returns the operator spelling word carries at the given
// attach point. "-o" and "-a" are rewritten to "-or"/"-and" under find and
// are not operators anywhere else.
func binaryLogicValue(word string, attachPoint *ast.Node) (string, bool) {
	switch word {
	case "-o":
		if underFind(attachPoint) {
			return "-or", true
		}

		return "", false

	case "-a":
		if underFind(attachPoint) {
			return "-and", true
		}

		return "", false
	}

	return word, isBinaryLogicWord(word)
}

// flagAttachPoint walks up from attachPoint to the nearest node that can own
// a flag: a head command or a logic operator.
func flagAttachPoint(attachPoint *ast.Node) (*ast.Node, error) {
	cur := attachPoint
	for cur != nil && cur.Kind == ast.KindFlag {
		cur = cur.Parent()
	}

	if cur == nil {
		return nil, ErrNoAttachPoint
	}

	switch cur.Kind {
	case ast.KindHeadCommand, ast.KindUnaryLogicOp, ast.KindBinaryLogicOp:
		return cur, nil
	default:
		return nil, errors.Wrapf(ErrNoAttachPoint, "reached %s node", cur.Kind)
	}
}

// commandPass holds the scan state for one atomic command: the attachment
// cursor, the operators recorded for the fix-up passes, and the parenthesis
// bookkeeping.
type commandPass struct {
	run *run

	attachPoint  *ast.Node
	endOfOptions bool

	headCommands []*ast.Node

	unaryOps  []*ast.Node
	binaryOps []*ast.Node

	deferredUnary  []*ast.Node
	deferredBinary []*ast.Node

	parenAttachPoints []*ast.Node
}

// normalizeCommand rewrites one atomic command: a left-to-right attachment
// scan, then the logic-operator fix-ups, then parenthesis desugaring, then
// the deferred fix-ups and the single-operand simplification sweep.
func (r *run) normalizeCommand(node *shell.SynNode, current *ast.Node, depth int) error {
	if depth > r.opts.MaxDepth {
		return errors.Wrapf(ErrDepthExceeded, "depth %d", depth)
	}

	pass := &commandPass{run: r, attachPoint: current}

	if err := pass.scan(node, depth); err != nil {
		return err
	}

	if len(pass.parenAttachPoints) != 0 {
		return errors.Wrapf(ErrUnbalancedParentheses,
			"%d unclosed groups", len(pass.parenAttachPoints))
	}

	switch len(pass.headCommands) {
	case 0:
		return errors.Wrapf(ErrMissingHeadCommand, "%q", firstWord(node))
	case 1:
	default:
		values := make([]string, 0, len(pass.headCommands))
		for _, hc := range pass.headCommands {
			values = append(values, hc.Value)
		}

		return errors.Wrapf(ErrMultipleHeadCommands, "%s", strings.Join(values, ", "))
	}

	head := pass.headCommands[0]

	for _, op := range pass.unaryOps {
		if err := pass.adjustUnary(op, true); err != nil {
			return err
		}
	}

	for _, op := range pass.binaryOps {
		if err := pass.adjustBinary(op, true); err != nil {
			return err
		}
	}

	if err := pass.desugarParens(head); err != nil {
		return err
	}

	for _, op := range pass.deferredUnary {
		if err := pass.adjustUnary(op, false); err != nil {
			return err
		}
	}

	for _, op := range pass.deferredBinary {
		if err := pass.adjustBinary(op, false); err != nil {
			return err
		}
	}

	collapseSingleOperandOps(head)

	return nil
}

func firstWord(node *shell.SynNode) string {
	for _, part := range node.Parts {
		if part.Kind == shell.SynWord {
			return part.Word
		}
	}

	return ""
}

// scan processes the command's parts left to right, attaching each token at
// the current attachment point per its role.
//
//nolint:cyclop,funlen,gocognit // one branch per token role, mirrored by the fix-up passes
func (p *commandPass) scan(node *shell.SynNode, depth int) error {
	r := p.run

	i := 0
	for i < len(node.Parts) {
		child := node.Parts[i]
		if child.Kind != shell.SynWord {
			return errors.Wrapf(ErrUnsupportedConstruct, "%s", child.Kind)
		}

		word := child.Word

		switch {
		case word == "--":
			p.endOfOptions = true

		case isUnaryLogicWord(word):
			ap, err := flagAttachPoint(p.attachPoint)
			if err != nil {
				return err
			}

			p.attachPoint = ap

			if isUnaryLogicOp(word, ap) {
				op := ast.New(ast.KindUnaryLogicOp, word)
				ap.Attach(op)
				p.unaryOps = append(p.unaryOps, op)
			} else if p.attachPoint, err = r.attachOption(child, ap); err != nil {
				return err
			}

		case isBinaryLogicWord(word):
			ap, err := flagAttachPoint(p.attachPoint)
			if err != nil {
				return err
			}

			p.attachPoint = ap

			if value, ok := binaryLogicValue(word, ap); ok {
				op := ast.New(ast.KindBinaryLogicOp, value)
				ap.Attach(op)
				p.binaryOps = append(p.binaryOps, op)
			} else if p.attachPoint, err = r.attachOption(child, ap); err != nil {
				return err
			}

		case p.headCommandToken(word, child):
			next, err := p.attachHeadCommand(node, child, i, depth)
			if err != nil {
				return err
			}

			i = next

		case strings.HasPrefix(word, "-") && !p.endOfOptions:
			if err := p.attachDashWord(child, depth); err != nil {
				return err
			}

		default:
			if word == "(" {
				p.parenAttachPoints = append(p.parenAttachPoints, p.attachPoint)
			}

			if word == ")" {
				if len(p.parenAttachPoints) == 0 {
					return errors.Wrap(ErrUnbalancedParentheses, "close without open")
				}

				p.attachPoint = p.parenAttachPoints[len(p.parenAttachPoints)-1]
				p.parenAttachPoints = p.parenAttachPoints[:len(p.parenAttachPoints)-1]
			}

			if err := r.attachArgument(child, p.attachPoint, depth); err != nil {
				return err
			}
		}

		i++
	}

	return nil
}

// headCommandToken reports whether the word starts a (possibly nested)
// command here: a registered utility, unquoted, and not already inside a
// non-wrapper command.
func (p *commandPass) headCommandToken(word string, child *shell.SynNode) bool {
	if !registry.IsHeadCommand(word) || p.run.quoted(child) {
		return false
	}

	return p.attachPoint.Kind != ast.KindHeadCommand || registry.IsShellWrapper(p.attachPoint.Value)
}

// attachHeadCommand handles a head-command token: the first token of a
// command becomes its headcommand node; later ones start embedded commands
// under an embedding flag or a shell wrapper. Returns the index scanning
// should resume from.
func (p *commandPass) attachHeadCommand(
	node *shell.SynNode,
	child *shell.SynNode,
	i, depth int,
) (int, error) {
	r := p.run

	if i == 0 {
		if err := r.attachWord(child, p.attachPoint, ast.KindHeadCommand, ast.ArgTypeUnknown, depth); err != nil {
			return 0, err
		}

		head := p.attachPoint.RightChild()
		p.attachPoint = head
		p.headCommands = append(p.headCommands, head)

		return i, nil
	}

	switch {
	case p.attachPoint.Kind == ast.KindFlag && registry.IsEmbedFlag(p.attachPoint.Value):
		next, err := p.scanEmbedded(node, i, depth)
		if err != nil {
			return 0, err
		}

		p.attachPoint = p.attachPoint.Parent()

		return next, nil

	case p.attachPoint.Kind == ast.KindFlag:
		// The flag does not introduce a sub-command; the token is most
		// likely a plain argument that happens to name a utility.
		return i, r.attachArgument(child, p.attachPoint, depth)

	case p.attachPoint.Kind == ast.KindHeadCommand:
		rest := &shell.SynNode{Kind: shell.SynCommand, Parts: node.Parts[i:]}
		if err := r.normalizeCommand(rest, p.attachPoint, depth+1); err != nil {
			return 0, err
		}

		return len(node.Parts) - 1, nil

	default:
		r.log.Warn("head command token at non-command attach point",
			"word", child.Word, "attach_point", p.attachPoint.Symbol())

		return i, nil
	}
}

// scanEmbedded collects the tokens of an embedded command (under -exec and
// friends) up to its ";" or "+" terminator, normalizes them recursively
// under the embedding flag, and records the terminator on the flag's value.
// A missing terminator is a warning; ";" is assumed.
func (p *commandPass) scanEmbedded(node *shell.SynNode, start, depth int) (int, error) {
	r := p.run
	flag := p.attachPoint
	sub := &shell.SynNode{Kind: shell.SynCommand}

	for j := start; j < len(node.Parts); j++ {
		part := node.Parts[j]
		if part.Kind != shell.SynWord {
			continue
		}

		if part.Word == ";" || part.Word == "+" {
			if err := r.normalizeCommand(sub, flag, depth+1); err != nil {
				return 0, err
			}

			flag.Value += "::" + part.Word

			return j, nil
		}

		sub.Parts = append(sub.Parts, part)
	}

	r.log.Warn("embedded command missing terminator, assuming \";\"", "flag", flag.Value)

	if err := r.normalizeCommand(sub, flag, depth+1); err != nil {
		return 0, err
	}

	flag.Value += "::;"

	return len(node.Parts) - 1, nil
}

// attachDashWord handles a dash-prefixed token before end-of-options. It is
// usually a flag, but when the cursor sits on a childless flag that accepts
// an argument and the token contains a digit, the token is that flag's
// argument ("-mtime -1").
func (p *commandPass) attachDashWord(child *shell.SynNode, depth int) error {
	r := p.run

	if p.attachPoint.Kind == ast.KindFlag && containsDigit(child.Word) {
		if head := p.attachPoint.HeadCommand(); head != nil {
			argType, takesArg := r.resolver.ForFlag(head.Value, p.attachPoint.Value)
			if takesArg && p.attachPoint.NumChildren() == 0 {
				return r.attachWord(child, p.attachPoint, ast.KindArgument, argType, depth)
			}
		}
	}

	next, err := r.attachOption(child, p.attachPoint)
	if err != nil {
		return err
	}

	p.attachPoint = next

	return nil
}

// attachOption attaches a flag token at the nearest valid attach point,
// splitting clustered short-option groups into one flag per character.
// Double-dash options, logic-operator spellings, find flags, and
// single-character options are never split. Returns the new attachment
// cursor: the just-attached (last) flag.
func (r *run) attachOption(child *shell.SynNode, attachPoint *ast.Node) (*ast.Node, error) {
	ap, err := flagAttachPoint(attachPoint)
	if err != nil {
		return nil, err
	}

	word := child.Word

	wholeFlag := strings.HasPrefix(word, "--") ||
		isUnaryLogicWord(word) ||
		isBinaryLogicWord(word) ||
		ap.Value == "find" ||
		len(word) <= 2 ||
		!strings.HasPrefix(word, "-") ||
		!r.opts.SplitFlags

	if wholeFlag {
		flag := ast.New(ast.KindFlag, r.normalizeWord(child, ast.KindFlag))
		ap.Attach(flag)
	} else {
		for _, c := range word[1:] {
			flag := ast.New(ast.KindFlag, r.normalizeText("-"+string(c)))
			ap.Attach(flag)
		}

		r.log.Debug("split clustered flags", "word", word)
	}

	return ap.RightChild(), nil
}

// attachArgument resolves a word's semantic type against the current attach
// point and attaches it as an argument node. A flag attach point that takes
// no argument redirects the word to the head command.
func (r *run) attachArgument(child *shell.SynNode, attachPoint *ast.Node, depth int) error {
	ap := attachPoint
	if ap.Kind == ast.KindFlag && ap.NumChildren() >= 1 {
		ap = ap.Parent()
	}

	argType := ast.ArgTypeUnknown

	switch ap.Kind {
	case ast.KindFlag:
		head := ap.HeadCommand()
		if head == nil {
			return errors.Wrapf(ErrNoAttachPoint, "flag %s outside a command", ap.Value)
		}

		resolved, takesArg := r.resolver.ForFlag(head.Value, ap.Value)
		if takesArg {
			argType = resolved

			break
		}

		ap = head

		fallthrough

	case ast.KindHeadCommand:
		resolved, err := r.resolver.ForHeadCommand(ap.Value, child.Word)
		if err != nil {
			return err
		}

		argType = resolved

	default:
		r.log.Warn("unrecognized argument attachment point",
			"kind", ap.Kind.String(), "word", child.Word)
	}

	return r.attachWord(child, ap, ast.KindArgument, argType, depth)
}

// adjustUnary makes the operator's right sibling its sole child. When the
// sibling is an open-parenthesis marker the fix-up is deferred until after
// desugaring (deferralAllowed); an operator with no right sibling is a
// logged anomaly, not an error.
func (p *commandPass) adjustUnary(op *ast.Node, deferralAllowed bool) error {
	rsb := op.RightSibling()
	if rsb == nil {
		p.run.log.Warn("unary logic operator without a right operand", "op", op.Value)

		return nil
	}

	if rsb.Value == "(" {
		if deferralAllowed {
			p.deferredUnary = append(p.deferredUnary, op)

			return nil
		}

		return errors.Wrapf(ErrUnbalancedParentheses, "operand of %s", op.Value)
	}

	if err := op.Parent().Detach(rsb); err != nil {
		return err
	}

	op.Attach(rsb)

	return nil
}

// adjustBinary makes the operator's left and right siblings its children.
// Parenthesis-marker neighbors defer the fix-up; a left sibling that is the
// same operator is merged in, keeping chains of one operator flat.
func (p *commandPass) adjustBinary(op *ast.Node, deferralAllowed bool) error {
	lsb, rsb := op.LeftSibling(), op.RightSibling()
	if lsb == nil || rsb == nil {
		return errors.Wrapf(ErrDanglingOperator, "%s", op.Value)
	}

	if rsb.Value == "(" || lsb.Value == ")" {
		if deferralAllowed {
			p.deferredBinary = append(p.deferredBinary, op)

			return nil
		}

		return errors.Wrapf(ErrUnbalancedParentheses, "operand of %s", op.Value)
	}

	parent := op.Parent()

	if err := parent.Detach(lsb); err != nil {
		return err
	}

	if err := parent.Detach(rsb); err != nil {
		return err
	}

	if lsb.Kind == ast.KindBinaryLogicOp && lsb.Value == op.Value {
		merged := append([]*ast.Node(nil), lsb.Children()...)
		for _, c := range merged {
			if err := lsb.Detach(c); err != nil {
				return err
			}

			op.Attach(c)
		}

		op.Attach(rsb)

		return nil
	}

	op.Attach(lsb)
	op.Attach(rsb)

	return nil
}

// desugarParens rewrites parenthesized groups among the head command's
// children into explicit operator structure: each matched pair collapses to
// the lone grouped node, or to an implicit "-and" wrapping the group.
func (p *commandPass) desugarParens(head *ast.Node) error {
	var (
		stack  []*ast.Node
		buffer []*ast.Node
	)

	depth := 0

	i := 0
	for i < head.NumChildren() {
		child := head.Children()[i]

		switch {
		case child.Value == "(":
			stack = append(stack, child)
			depth++

		case child.Value == ")":
			if depth < 1 || len(stack) == 0 {
				return errors.Wrap(ErrUnbalancedParentheses, "close without open")
			}

			var popped *ast.Node

			popped, stack = stack[len(stack)-1], stack[:len(stack)-1]
			for popped.Value != "(" {
				buffer = append([]*ast.Node{popped}, buffer...)

				if err := head.Detach(popped); err != nil {
					return err
				}

				if len(stack) == 0 {
					return errors.Wrap(ErrUnbalancedParentheses, "close without open")
				}

				popped, stack = stack[len(stack)-1], stack[:len(stack)-1]
			}

			if len(buffer) == 0 {
				return errors.Wrap(ErrUnbalancedParentheses, "empty group")
			}

			repl := buffer[0]
			if len(buffer) > 1 {
				repl = organizeBuffer(buffer)
			}

			buffer = nil

			idx, err := head.SubstituteParens(popped, child, repl)
			if err != nil {
				return err
			}

			i = idx
			depth--

			if depth >= 1 {
				stack = append(stack, repl)
			}

		case depth >= 1:
			stack = append(stack, child)
		}

		i++
	}

	if len(stack) != 0 || depth != 0 {
		return errors.Wrapf(ErrUnbalancedParentheses, "%d unclosed groups", depth)
	}

	return nil
}

// organizeBuffer wraps a parenthesized group of more than one node in an
// implicit "-and".
func organizeBuffer(buffer []*ast.Node) *ast.Node {
	group := ast.New(ast.KindBinaryLogicOp, "-and")
	for _, n := range buffer {
		group.Attach(n)
	}

	return group
}

// collapseSingleOperandOps replaces every binary operator left with exactly
// one child by that child; an "-and" of one operand is just the operand.
func collapseSingleOperandOps(node *ast.Node) {
	children := append([]*ast.Node(nil), node.Children()...)

	for _, child := range children {
		collapseSingleOperandOps(child)

		if child.Kind == ast.KindBinaryLogicOp && child.NumChildren() == 1 {
			only := child.LeftChild()

			// Both operations act on nodes whose membership was just
			// established, so neither can fail.
			_ = child.Detach(only)
			_ = node.ReplaceChild(child, only)
		}
	}
}
