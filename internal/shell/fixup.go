package shell

import (
	"regexp"
	"strings"
)

var tarFix = regexp.MustCompile(` tar \w`)

// Prepare applies the pre-parse command fixups used to clean a scraped
// command corpus before parsing. The fixups are corpus-tuned policy, not
// shell semantics: they repair the most common transcription artifacts seen
// in the training data.
func Prepare(cmd string) string {
	cmd = strings.ReplaceAll(cmd, "\n", " ")
	cmd = strings.TrimSpace(cmd)

	// Drop sudo; privilege elevation carries no structure.
	cmd = strings.ReplaceAll(cmd, "sudo", "")

	// Utilities invoked by full path.
	cmd = strings.ReplaceAll(cmd, "/usr/bin/find", "find")
	cmd = strings.ReplaceAll(cmd, "~/bin/find", "find")
	cmd = strings.ReplaceAll(cmd, "/bin/find", "find")

	cmd = strings.TrimSpace(cmd)

	// Shell prompt characters copied along with the command.
	cmd = strings.TrimPrefix(cmd, "$ ")
	cmd = strings.TrimPrefix(cmd, "# ")

	if rest, ok := strings.CutPrefix(cmd, "$find "); ok {
		cmd = "find " + rest
	}

	if rest, ok := strings.CutPrefix(cmd, "#find "); ok {
		cmd = "find " + rest
	}

	// Common parenthesis spelling errors.
	cmd = strings.ReplaceAll(cmd, `-\(`, `\(`)
	cmd = strings.ReplaceAll(cmd, `-\)`, `\)`)
	cmd = strings.ReplaceAll(cmd, `"\)`, ` \)`)

	// The first argument of tar is an option even without the dash.
	if strings.HasPrefix(cmd, "tar") {
		cmd = " " + cmd
		for _, match := range tarFix.FindAllString(cmd, -1) {
			cmd = strings.ReplaceAll(cmd, match, strings.Replace(match, "tar ", "tar -", 1))
		}

		cmd = strings.TrimSpace(cmd)
	}

	return strings.TrimSpace(cmd)
}
