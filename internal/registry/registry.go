// Package registry holds the static command knowledge the normalizer depends
// on: the set of known head commands, the shell wrapper commands that may
// introduce a nested command, and the find flags that embed a sub-command.
//
// The sets intentionally cover a constrained, high-frequency command corpus;
// commands outside them are rejected rather than guessed at.
package registry

// headCommands is the closed set of utilities recognized as head commands.
var headCommands = map[string]struct{}{
	"awk":      {},
	"basename": {},
	"bash":     {},
	"cat":      {},
	"chgrp":    {},
	"chmod":    {},
	"chown":    {},
	"cp":       {},
	"csh":      {},
	"cut":      {},
	"df":       {},
	"diff":     {},
	"dirname":  {},
	"du":       {},
	"echo":     {},
	"egrep":    {},
	"exec":     {},
	"fgrep":    {},
	"file":     {},
	"find":     {},
	"grep":     {},
	"gzip":     {},
	"head":     {},
	"kill":     {},
	"ksh":      {},
	"ln":       {},
	"ls":       {},
	"mkdir":    {},
	"mv":       {},
	"readlink": {},
	"rm":       {},
	"rmdir":    {},
	"sed":      {},
	"sh":       {},
	"sort":     {},
	"split":    {},
	"tail":     {},
	"tar":      {},
	"tcsh":     {},
	"touch":    {},
	"uniq":     {},
	"wc":       {},
	"which":    {},
	"xargs":    {},
	"zsh":      {},
}

// shellWrappers are head commands that invoke another command given as their
// arguments; a known command name following one of these starts a nested
// command.
var shellWrappers = map[string]struct{}{
	"sh":    {},
	"csh":   {},
	"ksh":   {},
	"tcsh":  {},
	"zsh":   {},
	"bash":  {},
	"exec":  {},
	"xargs": {},
}

// embedFlags are find flags whose arguments form an embedded sub-command
// terminated by ";" or "+".
var embedFlags = map[string]struct{}{
	"-exec":    {},
	"-execdir": {},
	"-ok":      {},
	"-okdir":   {},
}

// IsHeadCommand reports whether word names a known head command.
func IsHeadCommand(word string) bool {
	_, ok := headCommands[word]
	return ok
}

// IsShellWrapper reports whether name is a shell wrapper command.
func IsShellWrapper(name string) bool {
	_, ok := shellWrappers[name]
	return ok
}

// IsEmbedFlag reports whether flag introduces an embedded sub-command.
func IsEmbedFlag(flag string) bool {
	_, ok := embedFlags[flag]
	return ok
}

// HeadCommands returns the known head command names. The result is a fresh
// slice; mutation does not affect the registry.
func HeadCommands() []string {
	out := make([]string, 0, len(headCommands))
	for name := range headCommands {
		out = append(out, name)
	}

	return out
}
