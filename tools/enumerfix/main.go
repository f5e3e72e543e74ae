// Command enumerfix rewrites an enumer-generated file to report lookup
// failures through cockroachdb/errors instead of fmt.Errorf, keeping the
// generated enum code on the same error stack as the rest of the module. It
// runs as a go:generate step right after enumer itself.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const filePerm = 0o644

var importBlock = regexp.MustCompile(`import \(\n([\s\S]*?)\n\)`)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: enumerfix <generated-file>")
		os.Exit(1)
	}

	if err := rewrite(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "enumerfix:", err)
		os.Exit(1)
	}
}

func rewrite(path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from go:generate
	if err != nil {
		return err
	}

	return os.WriteFile(path, fix(string(content)), filePerm)
}

func fix(src string) []byte {
	out := strings.ReplaceAll(src, "fmt.Errorf", "errors.Newf")

	// fmt stays imported only while something else in the file still uses it.
	if strings.Contains(out, "fmt.") {
		out = addImport(out, `"github.com/cockroachdb/errors"`)
	} else {
		out = strings.Replace(out, "\t\"fmt\"", "\t\"github.com/cockroachdb/errors\"", 1)
	}

	return []byte(out)
}

func addImport(src, imp string) string {
	match := importBlock.FindStringSubmatch(src)
	if match == nil || strings.Contains(match[1], imp) {
		return src
	}

	return importBlock.ReplaceAllString(src, "import (\n"+match[1]+"\n\t"+imp+"\n)")
}
