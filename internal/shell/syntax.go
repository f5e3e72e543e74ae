// Package shell bridges a generic shell parser and the normalizer: it defines
// the generic syntax-tree contract the normalizer consumes and produces such
// trees from bash command text using mvdan.cc/sh.
package shell

// SynKind tags a generic syntax node with its grammatical role. The set
// mirrors what a bash parser produces; the normalizer supports only a subset
// and rejects the rest with classified errors.
type SynKind string

// Generic syntax node kinds.
const (
	SynWord                 SynKind = "word"
	SynCommand              SynKind = "command"
	SynPipeline             SynKind = "pipeline"
	SynList                 SynKind = "list"
	SynCommandSubstitution  SynKind = "commandsubstitution"
	SynProcessSubstitution  SynKind = "processsubstitution"
	SynParameter            SynKind = "parameter"
	SynTilde                SynKind = "tilde"
	SynAssignment           SynKind = "assignment"
	SynRedirect             SynKind = "redirect"
	SynOperator             SynKind = "operator"
	SynFor                  SynKind = "for"
	SynIf                   SynKind = "if"
	SynWhile                SynKind = "while"
	SynUntil                SynKind = "until"
	SynFunction             SynKind = "function"
	SynHeredoc              SynKind = "heredoc"
)

// Span is a half-open [Start, End) byte range into the prepared source text.
type Span struct {
	Start int
	End   int
}

// SynNode is one node of the generic syntax tree.
type SynNode struct {
	// Kind is the node's grammatical role.
	Kind SynKind

	// Word is the flattened token text. Set for word, assignment, and
	// operator nodes.
	Word string

	// Pos is the node's source span. Set for word nodes; used for quote
	// recovery.
	Pos Span

	// Parts are the node's ordered sub-nodes: the words of a command, the
	// alternating command/operator parts of a pipeline or list, or the
	// expansion parts of a compound word.
	Parts []*SynNode

	// Command is the embedded command of a substitution node.
	Command *SynNode
}
