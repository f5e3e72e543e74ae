// Package ast defines the normalized command AST: semantically typed nodes
// for head commands, flags, arguments, logic operators, and substitutions,
// with the tree-surgery primitives the normalizer relies on.
package ast

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=lower -output=kind_enumer.go
//go:generate go run github.com/dmarkham/enumer -type=ArgType -trimprefix=ArgType -output=argtype_enumer.go
//go:generate go run ../../tools/enumerfix kind_enumer.go
//go:generate go run ../../tools/enumerfix argtype_enumer.go

// Kind identifies the semantic role of a node in the normalized tree.
type Kind int

const (
	// KindRoot is the synthetic root holding exactly one normalized command.
	KindRoot Kind = iota
	// KindPipeline holds the head commands of a pipe chain, in order.
	KindPipeline
	// KindHeadCommand is a utility invocation (e.g. "find", "ls").
	KindHeadCommand
	// KindFlag is an option token attached to a head command or logic operator.
	KindFlag
	// KindArgument is a typed argument leaf.
	KindArgument
	// KindUnaryLogicOp is a unary logic operator ("!", "-not").
	KindUnaryLogicOp
	// KindBinaryLogicOp is an n-ary logic operator ("-and", "-or", "&&", "||").
	KindBinaryLogicOp
	// KindCommandSubstitution wraps an embedded "$( ... )" command.
	KindCommandSubstitution
	// KindProcessSubstitution wraps an embedded "<( ... )" or ">( ... )" command.
	KindProcessSubstitution
)

// ArgType is the semantic type assigned to an argument by the grammar and the
// lexical heuristic.
type ArgType int

const (
	// ArgTypeUnknown marks arguments whose type could not be determined.
	ArgTypeUnknown ArgType = iota
	// ArgTypeFile is a file or directory path.
	ArgTypeFile
	// ArgTypePattern is a glob or regex pattern.
	ArgTypePattern
	// ArgTypeNumber is a plain numeric argument.
	ArgTypeNumber
	// ArgTypeSize is a number with a size unit suffix (k, M, G, T, P).
	ArgTypeSize
	// ArgTypeTime is a number with a time unit suffix (s, m, h, d, w).
	ArgTypeTime
	// ArgTypePermissionMode is a chmod-style permission specification.
	ArgTypePermissionMode
	// ArgTypeUserName is a user name.
	ArgTypeUserName
	// ArgTypeGroupName is a group name.
	ArgTypeGroupName
	// ArgTypeUtility is an embedded utility name.
	ArgTypeUtility
	// ArgTypeReservedWord is a literal reserved token ("+", ";", "{}").
	ArgTypeReservedWord
)
