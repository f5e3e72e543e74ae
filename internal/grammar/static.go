package grammar

import (
	_ "embed"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-labs/bashast/pkg/ast"
)

//go:embed grammar.toml
var embeddedGrammar []byte

// schemaConstraint is the grammar schema version range this build understands.
const schemaConstraint = "^1"

// noArgument marks a flag that takes no argument in the grammar file.
const noArgument = "none"

var (
	// ErrSchemaVersion is returned when the grammar file's schema version is
	// outside the supported range.
	ErrSchemaVersion = errors.New("unsupported grammar schema version")

	// ErrBadGrammar is returned when the grammar file cannot be decoded.
	ErrBadGrammar = errors.New("malformed grammar file")
)

// grammarFile is the on-disk TOML shape.
type grammarFile struct {
	SchemaVersion string                    `toml:"schema_version"`
	Commands      map[string]commandGrammar `toml:"commands"`
}

type commandGrammar struct {
	ArgTypes []string          `toml:"arg_types"`
	Flags    map[string]string `toml:"flags"`
}

type flagSpec struct {
	argType  ast.ArgType
	takesArg bool
}

type commandSpec struct {
	argTypes []ast.ArgType
	flags    map[string]flagSpec
}

// StaticLookup is a Lookup backed by the embedded grammar file. It is
// immutable after construction and safe for concurrent use.
type StaticLookup struct {
	commands map[string]commandSpec
}

// NewStaticLookup loads the embedded grammar.
func NewStaticLookup() (*StaticLookup, error) {
	return Parse(embeddedGrammar)
}

// Parse decodes a grammar file and validates its schema version.
func Parse(data []byte) (*StaticLookup, error) {
	var file grammarFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(ErrBadGrammar, err.Error())
	}

	version, err := semver.NewVersion(file.SchemaVersion)
	if err != nil {
		return nil, errors.Wrapf(ErrBadGrammar, "schema_version %q", file.SchemaVersion)
	}

	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return nil, errors.Wrap(err, "parse schema constraint")
	}

	if !constraint.Check(version) {
		return nil, errors.Wrapf(ErrSchemaVersion, "%s (want %s)", version, schemaConstraint)
	}

	commands := make(map[string]commandSpec, len(file.Commands))

	for name, cmd := range file.Commands {
		spec := commandSpec{
			argTypes: make([]ast.ArgType, 0, len(cmd.ArgTypes)),
			flags:    make(map[string]flagSpec, len(cmd.Flags)),
		}

		for _, typeName := range cmd.ArgTypes {
			argType, typeErr := ast.ArgTypeString(typeName)
			if typeErr != nil {
				return nil, errors.Wrapf(ErrBadGrammar, "command %s: %v", name, typeErr)
			}

			spec.argTypes = append(spec.argTypes, argType)
		}

		for flag, typeName := range cmd.Flags {
			if typeName == noArgument {
				spec.flags[flag] = flagSpec{}
				continue
			}

			argType, typeErr := ast.ArgTypeString(typeName)
			if typeErr != nil {
				return nil, errors.Wrapf(ErrBadGrammar, "command %s flag %s: %v", name, flag, typeErr)
			}

			spec.flags[flag] = flagSpec{argType: argType, takesArg: true}
		}

		commands[name] = spec
	}

	return &StaticLookup{commands: commands}, nil
}

// PossibleArgTypes returns the positional argument types cmd accepts.
func (l *StaticLookup) PossibleArgTypes(cmd string) ([]ast.ArgType, bool) {
	spec, ok := l.commands[cmd]
	if !ok {
		return nil, false
	}

	return spec.argTypes, true
}

// FlagArgType returns the argument type flag accepts under cmd. ok is false
// for flags that take no argument and for unknown command/flag pairs.
func (l *StaticLookup) FlagArgType(cmd, flag string) (ast.ArgType, bool) {
	spec, ok := l.commands[cmd]
	if !ok {
		return ast.ArgTypeUnknown, false
	}

	fs, ok := spec.flags[flag]
	if !ok || !fs.takesArg {
		return ast.ArgTypeUnknown, false
	}

	return fs.argType, true
}

// Commands returns the names of all commands in the grammar.
func (l *StaticLookup) Commands() []string {
	out := make([]string, 0, len(l.commands))
	for name := range l.commands {
		out = append(out, name)
	}

	return out
}

// Verify interface compliance.
var _ Lookup = (*StaticLookup)(nil)
