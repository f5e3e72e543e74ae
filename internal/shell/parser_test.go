package shell_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/bashast/internal/shell"
)

var _ = Describe("Parser", func() {
	var parser *shell.Parser

	BeforeEach(func() {
		parser = shell.NewParser()
	})

	words := func(node *shell.SynNode) []string {
		out := make([]string, 0, len(node.Parts))
		for _, part := range node.Parts {
			out = append(out, part.Word)
		}

		return out
	}

	Describe("simple commands", func() {
		It("should map a call onto a command node with word parts", func() {
			node, err := parser.Parse("find . -name foo")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynCommand))
			Expect(words(node)).To(Equal([]string{"find", ".", "-name", "foo"}))
		})

		It("should record word spans against the source", func() {
			src := "ls -la"
			node, err := parser.Parse(src)
			Expect(err).NotTo(HaveOccurred())

			flag := node.Parts[1]
			Expect(src[flag.Pos.Start:flag.Pos.End]).To(Equal("-la"))
		})

		It("should strip quotes from word text but keep the quoted span", func() {
			src := `find . -name "*.c"`
			node, err := parser.Parse(src)
			Expect(err).NotTo(HaveOccurred())

			pattern := node.Parts[3]
			Expect(pattern.Word).To(Equal("*.c"))
			Expect(src[pattern.Pos.Start:pattern.Pos.End]).To(Equal(`"*.c"`))
		})

		It("should resolve backslash escapes in unquoted literals", func() {
			node, err := parser.Parse(`find . \( -name a \) -exec rm {} \;`)
			Expect(err).NotTo(HaveOccurred())
			Expect(words(node)).To(Equal(
				[]string{"find", ".", "(", "-name", "a", ")", "-exec", "rm", "{}", ";"}))
		})

		It("should keep leading assignments as assignment parts", func() {
			node, err := parser.Parse("LANG=C grep pattern file")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Parts[0].Kind).To(Equal(shell.SynAssignment))
			Expect(node.Parts[0].Word).To(Equal("LANG=C"))
			Expect(node.Parts[1].Word).To(Equal("grep"))
		})
	})

	Describe("pipelines", func() {
		It("should flatten a pipe chain left to right", func() {
			node, err := parser.Parse("find . -type f | grep foo | wc -l")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynPipeline))
			Expect(node.Parts).To(HaveLen(5))
			Expect(node.Parts[0].Kind).To(Equal(shell.SynCommand))
			Expect(node.Parts[1].Kind).To(Equal(shell.SynOperator))
			Expect(node.Parts[1].Word).To(Equal("|"))
			Expect(node.Parts[2].Parts[0].Word).To(Equal("grep"))
			Expect(node.Parts[4].Parts[0].Word).To(Equal("wc"))
		})
	})

	Describe("lists", func() {
		It("should map && onto a three-part list", func() {
			node, err := parser.Parse("mkdir -p dir && cd dir")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynList))
			Expect(node.Parts).To(HaveLen(3))
			Expect(node.Parts[1].Kind).To(Equal(shell.SynOperator))
			Expect(node.Parts[1].Word).To(Equal("&&"))
		})

		It("should map semicolon-separated statements onto a list", func() {
			node, err := parser.Parse("ls; pwd")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynList))
			Expect(node.Parts).To(HaveLen(3))
			Expect(node.Parts[1].Word).To(Equal(";"))
		})
	})

	Describe("substitutions", func() {
		It("should parse a command substitution body", func() {
			node, err := parser.Parse("ls $(find . -type d)")
			Expect(err).NotTo(HaveOccurred())

			word := node.Parts[1]
			Expect(word.Word).To(Equal("$(find . -type d)"))
			Expect(word.Parts).To(HaveLen(1))

			sub := word.Parts[0]
			Expect(sub.Kind).To(Equal(shell.SynCommandSubstitution))
			Expect(sub.Command.Kind).To(Equal(shell.SynCommand))
			Expect(sub.Command.Parts[0].Word).To(Equal("find"))
		})

		It("should parse a process substitution body", func() {
			node, err := parser.Parse("diff <(sort a) <(sort b)")
			Expect(err).NotTo(HaveOccurred())

			sub := node.Parts[1].Parts[0]
			Expect(sub.Kind).To(Equal(shell.SynProcessSubstitution))
			Expect(sub.Command.Parts[0].Word).To(Equal("sort"))
		})

		It("should keep parameter expansions as raw text", func() {
			node, err := parser.Parse("ls $HOME")
			Expect(err).NotTo(HaveOccurred())

			word := node.Parts[1]
			Expect(word.Word).To(Equal("$HOME"))
			Expect(word.Parts[0].Kind).To(Equal(shell.SynParameter))
		})

		It("should reject multi-statement substitutions", func() {
			_, err := parser.Parse("ls $(pwd; pwd)")
			Expect(err).To(MatchError(shell.ErrUnimplementedConstruct))
		})
	})

	Describe("control flow", func() {
		It("should map a for loop onto a loop marker node", func() {
			node, err := parser.Parse("for f in *; do echo $f; done")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynFor))
		})

		It("should map an if clause onto a conditional marker node", func() {
			node, err := parser.Parse("if true; then ls; fi")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynIf))
		})
	})

	Describe("redirections", func() {
		It("should attach redirect markers to the command", func() {
			node, err := parser.Parse("find . -type f > out.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(node.Kind).To(Equal(shell.SynCommand))
			Expect(node.Parts[len(node.Parts)-1].Kind).To(Equal(shell.SynRedirect))
		})
	})

	Describe("failures", func() {
		It("should reject empty input", func() {
			_, err := parser.Parse("   ")
			Expect(err).To(MatchError(shell.ErrEmptyCommand))
		})

		It("should classify an unclosed quote as a mismatched delimiter", func() {
			_, err := parser.Parse(`find . -name "foo`)
			Expect(err).To(MatchError(shell.ErrMismatchedDelimiter))
		})

		It("should classify an unclosed substitution as a mismatched delimiter", func() {
			_, err := parser.Parse("ls $(find .")
			Expect(err).To(MatchError(shell.ErrMismatchedDelimiter))
		})

		It("should reject background execution", func() {
			_, err := parser.Parse("sleep 10 &")
			Expect(err).To(MatchError(shell.ErrUnimplementedConstruct))
		})

		It("should reject pipeline negation", func() {
			_, err := parser.Parse("! grep -q foo bar")
			Expect(err).To(MatchError(shell.ErrUnimplementedConstruct))
		})
	})
})
