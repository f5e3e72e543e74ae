package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const indentStep = "    "

// Fprint writes an indented rendering of the tree to w, one node per line as
// KIND(value). Argument nodes carry their semantic type in a trailing column
// aligned across the whole tree.
func Fprint(w io.Writer, n *Node) {
	if n == nil {
		return
	}

	width := maxLineWidth(n, 0)
	fprintNode(w, n, 0, width)
}

// Sprint returns the Fprint rendering as a string.
func Sprint(n *Node) string {
	var b strings.Builder

	Fprint(&b, n)

	return b.String()
}

func fprintNode(w io.Writer, n *Node, depth, width int) {
	line := nodeLine(n, depth)

	if n.Kind == KindArgument {
		pad := width - runewidth.StringWidth(line)
		fmt.Fprintf(w, "%s%s  <%s>\n", line, strings.Repeat(" ", pad), n.ArgType)
	} else {
		fmt.Fprintln(w, line)
	}

	for _, child := range n.children {
		fprintNode(w, child, depth+1, width)
	}
}

func nodeLine(n *Node, depth int) string {
	return strings.Repeat(indentStep, depth) +
		strings.ToUpper(n.Kind.String()) + "(" + n.Value + ")"
}

func maxLineWidth(n *Node, depth int) int {
	width := runewidth.StringWidth(nodeLine(n, depth))

	for _, child := range n.children {
		if w := maxLineWidth(child, depth+1); w > width {
			width = w
		}
	}

	return width
}
