package shell

import (
	"strings"

	"github.com/cockroachdb/errors"

	"mvdan.cc/sh/v3/syntax"
)

// Parser turns bash command text into the generic syntax tree. It wraps an
// mvdan.cc/sh parser; one Parser may be reused across commands.
type Parser struct {
	parser *syntax.Parser
}

// NewParser creates a Parser for the bash dialect.
func NewParser() *Parser {
	return &Parser{
		parser: syntax.NewParser(syntax.Variant(syntax.LangBash)),
	}
}

// Parse parses prepared command text (see Prepare) into a generic syntax
// tree. Word spans index into src. Failures are classified per the contract:
// empty input, mismatched delimiter, grammar error, unimplemented construct,
// or malformed shape.
func (p *Parser) Parse(src string) (*SynNode, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptyCommand
	}

	file, err := p.parser.Parse(strings.NewReader(src), "")
	if err != nil {
		return nil, classifyParseError(err)
	}

	if len(file.Stmts) == 0 {
		return nil, ErrEmptyCommand
	}

	c := &converter{src: src}

	if len(file.Stmts) == 1 {
		return c.stmt(file.Stmts[0])
	}

	// Multiple top-level statements become a list node; the normalizer
	// rejects lists of more than two parts.
	list := &SynNode{Kind: SynList}

	for i, stmt := range file.Stmts {
		if i > 0 {
			list.Parts = append(list.Parts, &SynNode{Kind: SynOperator, Word: ";"})
		}

		node, stmtErr := c.stmt(stmt)
		if stmtErr != nil {
			return nil, stmtErr
		}

		list.Parts = append(list.Parts, node)
	}

	return list, nil
}

type converter struct {
	src string
}

func (c *converter) stmt(stmt *syntax.Stmt) (*SynNode, error) {
	if stmt.Negated {
		return nil, errors.Wrap(ErrUnimplementedConstruct, "pipeline negation")
	}

	if stmt.Background || stmt.Coprocess {
		return nil, errors.Wrap(ErrUnimplementedConstruct, "background execution")
	}

	node, err := c.command(stmt.Cmd)
	if err != nil {
		return nil, err
	}

	if len(stmt.Redirs) > 0 {
		if node.Kind != SynCommand {
			return nil, errors.Wrap(ErrUnimplementedConstruct, "redirection")
		}

		// Attached as parts so the normalizer reports the unsupported
		// construct with the command context intact.
		for range stmt.Redirs {
			node.Parts = append(node.Parts, &SynNode{Kind: SynRedirect})
		}
	}

	return node, nil
}

//nolint:cyclop // one case per syntax construct
func (c *converter) command(cmd syntax.Command) (*SynNode, error) {
	switch x := cmd.(type) {
	case *syntax.CallExpr:
		return c.callExpr(x)

	case *syntax.BinaryCmd:
		switch x.Op {
		case syntax.Pipe, syntax.PipeAll:
			return c.pipeline(x)
		case syntax.AndStmt, syntax.OrStmt:
			return c.listPair(x)
		default:
			return nil, errors.Wrapf(ErrMalformedShape, "binary operator %s", x.Op)
		}

	case *syntax.IfClause:
		return &SynNode{Kind: SynIf}, nil

	case *syntax.WhileClause:
		if x.Until {
			return &SynNode{Kind: SynUntil}, nil
		}

		return &SynNode{Kind: SynWhile}, nil

	case *syntax.ForClause:
		return &SynNode{Kind: SynFor}, nil

	case *syntax.FuncDecl:
		return &SynNode{Kind: SynFunction}, nil

	case nil:
		return nil, errors.Wrap(ErrMalformedShape, "statement without a command")

	default:
		return nil, errors.Wrapf(ErrUnimplementedConstruct, "%T", cmd)
	}
}

func (c *converter) callExpr(call *syntax.CallExpr) (*SynNode, error) {
	node := &SynNode{Kind: SynCommand}

	for _, assign := range call.Assigns {
		node.Parts = append(node.Parts, &SynNode{
			Kind: SynAssignment,
			Word: c.raw(assign.Pos(), assign.End()),
		})
	}

	for _, word := range call.Args {
		wordNode, err := c.word(word)
		if err != nil {
			return nil, err
		}

		node.Parts = append(node.Parts, wordNode)
	}

	if len(node.Parts) == 0 {
		return nil, errors.Wrap(ErrMalformedShape, "command with no parts")
	}

	return node, nil
}

// pipeline flattens a pipe chain into alternating command and operator parts,
// preserving left-to-right order.
func (c *converter) pipeline(bc *syntax.BinaryCmd) (*SynNode, error) {
	var stmts []*syntax.Stmt

	collectPipe(bc.X, &stmts)
	collectPipe(bc.Y, &stmts)

	node := &SynNode{Kind: SynPipeline}

	for i, stmt := range stmts {
		if i > 0 {
			node.Parts = append(node.Parts, &SynNode{Kind: SynOperator, Word: "|"})
		}

		part, err := c.stmt(stmt)
		if err != nil {
			return nil, err
		}

		node.Parts = append(node.Parts, part)
	}

	return node, nil
}

func collectPipe(stmt *syntax.Stmt, out *[]*syntax.Stmt) {
	bc, ok := stmt.Cmd.(*syntax.BinaryCmd)
	if ok && (bc.Op == syntax.Pipe || bc.Op == syntax.PipeAll) &&
		len(stmt.Redirs) == 0 && !stmt.Negated {
		collectPipe(bc.X, out)
		collectPipe(bc.Y, out)

		return
	}

	*out = append(*out, stmt)
}

// listPair maps "x && y" / "x || y" onto a three-part list node.
func (c *converter) listPair(bc *syntax.BinaryCmd) (*SynNode, error) {
	left, err := c.stmt(bc.X)
	if err != nil {
		return nil, err
	}

	right, err := c.stmt(bc.Y)
	if err != nil {
		return nil, err
	}

	return &SynNode{
		Kind: SynList,
		Parts: []*SynNode{
			left,
			{Kind: SynOperator, Word: bc.Op.String()},
			right,
		},
	}, nil
}

//nolint:cyclop // one case per word part type
func (c *converter) word(word *syntax.Word) (*SynNode, error) {
	node := &SynNode{
		Kind: SynWord,
		Pos: Span{
			Start: int(word.Pos().Offset()),
			End:   int(word.End().Offset()),
		},
	}

	var text strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			text.WriteString(unescapeLit(p.Value))

		case *syntax.SglQuoted:
			text.WriteString(p.Value)

		case *syntax.DblQuoted:
			for _, dq := range p.Parts {
				switch dqp := dq.(type) {
				case *syntax.Lit:
					text.WriteString(dqp.Value)
				case *syntax.ParamExp:
					text.WriteString(c.raw(dqp.Pos(), dqp.End()))
					node.Parts = append(node.Parts, &SynNode{Kind: SynParameter})
				case *syntax.CmdSubst:
					text.WriteString(c.raw(dqp.Pos(), dqp.End()))

					sub, err := c.cmdSubst(dqp)
					if err != nil {
						return nil, err
					}

					node.Parts = append(node.Parts, sub)
				default:
					return nil, errors.Wrapf(ErrUnimplementedConstruct, "%T", dq)
				}
			}

		case *syntax.ParamExp:
			text.WriteString(c.raw(p.Pos(), p.End()))
			node.Parts = append(node.Parts, &SynNode{Kind: SynParameter})

		case *syntax.CmdSubst:
			text.WriteString(c.raw(p.Pos(), p.End()))

			sub, err := c.cmdSubst(p)
			if err != nil {
				return nil, err
			}

			node.Parts = append(node.Parts, sub)

		case *syntax.ProcSubst:
			text.WriteString(c.raw(p.Pos(), p.End()))

			sub, err := c.procSubst(p)
			if err != nil {
				return nil, err
			}

			node.Parts = append(node.Parts, sub)

		default:
			return nil, errors.Wrapf(ErrUnimplementedConstruct, "%T", part)
		}
	}

	node.Word = text.String()

	return node, nil
}

func (c *converter) cmdSubst(sub *syntax.CmdSubst) (*SynNode, error) {
	inner, err := c.substBody(sub.Stmts)
	if err != nil {
		return nil, err
	}

	return &SynNode{Kind: SynCommandSubstitution, Command: inner}, nil
}

func (c *converter) procSubst(sub *syntax.ProcSubst) (*SynNode, error) {
	inner, err := c.substBody(sub.Stmts)
	if err != nil {
		return nil, err
	}

	return &SynNode{Kind: SynProcessSubstitution, Command: inner}, nil
}

func (c *converter) substBody(stmts []*syntax.Stmt) (*SynNode, error) {
	if len(stmts) != 1 {
		return nil, errors.Wrap(ErrUnimplementedConstruct, "multi-statement substitution")
	}

	return c.stmt(stmts[0])
}

func (c *converter) raw(pos, end syntax.Pos) string {
	start := int(pos.Offset())
	stop := int(end.Offset())

	if start < 0 || stop > len(c.src) || start > stop {
		return ""
	}

	return c.src[start:stop]
}

// unescapeLit resolves backslash escapes in an unquoted literal, so that
// tokens like "\(" and "\;" arrive at the normalizer as their bare
// characters, matching what the shell would pass to the utility.
func unescapeLit(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	escaped := false

	for _, r := range s {
		if escaped {
			b.WriteRune(r)

			escaped = false

			continue
		}

		if r == '\\' {
			escaped = true
			continue
		}

		b.WriteRune(r)
	}

	if escaped {
		b.WriteRune('\\')
	}

	return b.String()
}
