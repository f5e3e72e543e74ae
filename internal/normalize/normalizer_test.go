package normalize_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/bashast/internal/grammar"
	"github.com/smykla-labs/bashast/internal/normalize"
	"github.com/smykla-labs/bashast/internal/shell"
	"github.com/smykla-labs/bashast/pkg/ast"
)

func newNormalizer(opts normalize.Options) *normalize.Normalizer {
	lookup, err := grammar.NewStaticLookup()
	Expect(err).NotTo(HaveOccurred())

	return normalize.New(lookup, opts, nil)
}

var _ = Describe("Normalizer", func() {
	var normalizer *normalize.Normalizer

	BeforeEach(func() {
		normalizer = newNormalizer(normalize.DefaultOptions())
	})

	// head returns the single command node under the root.
	head := func(root *ast.Node) *ast.Node {
		Expect(root.NumChildren()).To(Equal(1))

		return root.LeftChild()
	}

	Describe("simple commands", func() {
		It("should split clustered short options into one flag per letter", func() {
			root, err := normalizer.Normalize("ls -la")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.Kind).To(Equal(ast.KindHeadCommand))
			Expect(hc.Value).To(Equal("ls"))
			Expect(hc.NumChildren()).To(Equal(2))
			Expect(hc.LeftChild().Symbol()).To(Equal("FLAG_-l"))
			Expect(hc.RightChild().Symbol()).To(Equal("FLAG_-a"))
		})

		It("should keep clustered options whole with splitting disabled", func() {
			opts := normalize.DefaultOptions()
			opts.SplitFlags = false

			root, err := newNormalizer(opts).Normalize("ls -la")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(1))
			Expect(hc.LeftChild().Symbol()).To(Equal("FLAG_-la"))
		})

		It("should attach flag arguments under the flag with the grammar type", func() {
			root, err := normalizer.Normalize("find . -name foo")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))

			dot := hc.LeftChild()
			Expect(dot.Kind).To(Equal(ast.KindArgument))
			Expect(dot.ArgType).To(Equal(ast.ArgTypeFile))

			flag := hc.RightChild()
			Expect(flag.Symbol()).To(Equal("FLAG_-name"))
			Expect(flag.NumChildren()).To(Equal(1))
			Expect(flag.LeftChild().Value).To(Equal("foo"))
			Expect(flag.LeftChild().ArgType).To(Equal(ast.ArgTypePattern))
		})

		It("should send arguments of no-argument flags back to the head command", func() {
			root, err := normalizer.Normalize("grep -o pattern file")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(3))
			Expect(hc.LeftChild().Symbol()).To(Equal("FLAG_-o"))
			Expect(hc.Children()[1].Kind).To(Equal(ast.KindArgument))
			Expect(hc.Children()[1].Value).To(Equal("pattern"))
			Expect(hc.RightChild().Value).To(Equal("file"))
		})

		It("should treat everything after -- as arguments", func() {
			root, err := normalizer.Normalize("grep -- -pattern file")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))
			Expect(hc.LeftChild().Kind).To(Equal(ast.KindArgument))
			Expect(hc.LeftChild().Value).To(Equal("-pattern"))
		})

		It("should never split flags of find", func() {
			root, err := normalizer.Normalize("find . -newer ref")
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).Children()[1].Symbol()).To(Equal("FLAG_-newer"))
		})

		It("should split the dashed first option of tar", func() {
			root, err := normalizer.Normalize("tar xzf archive.tgz")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(3))
			Expect(hc.Children()[0].Symbol()).To(Equal("FLAG_-x"))
			Expect(hc.Children()[1].Symbol()).To(Equal("FLAG_-z"))

			fileFlag := hc.Children()[2]
			Expect(fileFlag.Symbol()).To(Equal("FLAG_-f"))
			Expect(fileFlag.LeftChild().Value).To(Equal("archive.tgz"))
			Expect(fileFlag.LeftChild().ArgType).To(Equal(ast.ArgTypeFile))
		})
	})

	Describe("word canonicalization", func() {
		It("should replace digit runs with the number placeholder", func() {
			root, err := normalizer.Normalize("find . -size 10k")
			Expect(err).NotTo(HaveOccurred())

			arg := head(root).RightChild().LeftChild()
			Expect(arg.Value).To(Equal(normalize.NumberPlaceholder + "k"))
			Expect(arg.ArgType).To(Equal(ast.ArgTypeSize))
		})

		It("should keep digits with digit normalization disabled", func() {
			opts := normalize.DefaultOptions()
			opts.NormalizeDigits = false

			root, err := newNormalizer(opts).Normalize("find . -size 10k")
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).RightChild().LeftChild().Value).To(Equal("10k"))
		})

		It("should take a digit-bearing dash word as the open flag's argument", func() {
			root, err := normalizer.Normalize("find . -mtime -1")
			Expect(err).NotTo(HaveOccurred())

			flag := head(root).RightChild()
			Expect(flag.Symbol()).To(Equal("FLAG_-mtime"))

			arg := flag.LeftChild()
			Expect(arg.Value).To(Equal("-" + normalize.NumberPlaceholder))
			Expect(arg.ArgType).To(Equal(ast.ArgTypeTime))
		})

		It("should replace spaced quoted arguments with the long pattern placeholder", func() {
			root, err := normalizer.Normalize(`grep "foo bar" file`)
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).LeftChild().Value).To(Equal(normalize.LongPatternPlaceholder))
		})

		It("should recover surrounding quotes into the token value", func() {
			root, err := normalizer.Normalize(`find . -name "*.c"`)
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).RightChild().LeftChild().Value).To(Equal(`"*.c"`))
		})

		It("should drop quotes with quote recovery disabled", func() {
			opts := normalize.DefaultOptions()
			opts.RecoverQuotes = false

			root, err := newNormalizer(opts).Normalize(`find . -name "*.c"`)
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).RightChild().LeftChild().Value).To(Equal("*.c"))
		})
	})

	Describe("logic operators", func() {
		It("should rewrite -o under find and lift its operands", func() {
			root, err := normalizer.Normalize("find . -name foo -o -iname bar")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))

			op := hc.RightChild()
			Expect(op.Kind).To(Equal(ast.KindBinaryLogicOp))
			Expect(op.Value).To(Equal("-or"))
			Expect(op.NumChildren()).To(Equal(2))
			Expect(op.LeftChild().Symbol()).To(Equal("FLAG_-name"))
			Expect(op.RightChild().Symbol()).To(Equal("FLAG_-iname"))
		})

		It("should merge chains of the same operator flat", func() {
			root, err := normalizer.Normalize("find . -name a -o -name b -o -name c")
			Expect(err).NotTo(HaveOccurred())

			op := head(root).RightChild()
			Expect(op.Value).To(Equal("-or"))
			Expect(op.NumChildren()).To(Equal(3))
		})

		It("should make the right neighbor the operand of a unary operator", func() {
			root, err := normalizer.Normalize("find . ! -name foo")
			Expect(err).NotTo(HaveOccurred())

			op := head(root).RightChild()
			Expect(op.Kind).To(Equal(ast.KindUnaryLogicOp))
			Expect(op.Value).To(Equal("!"))
			Expect(op.NumChildren()).To(Equal(1))
			Expect(op.LeftChild().Symbol()).To(Equal("FLAG_-name"))
		})

		It("should keep -o an ordinary flag outside find", func() {
			root, err := normalizer.Normalize("grep -o pattern file")
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).LeftChild().Kind).To(Equal(ast.KindFlag))
		})
	})

	Describe("parenthesized groups", func() {
		It("should collapse a grouped disjunction to its operator", func() {
			root, err := normalizer.Normalize(`find . \( -name "*.c" -o -name "*.h" \)`)
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))

			op := hc.RightChild()
			Expect(op.Kind).To(Equal(ast.KindBinaryLogicOp))
			Expect(op.Value).To(Equal("-or"))
			Expect(op.NumChildren()).To(Equal(2))

			Expect(treeValues(hc)).NotTo(ContainElement("("))
			Expect(treeValues(hc)).NotTo(ContainElement(")"))
		})

		It("should wrap a multi-node group in an implicit conjunction", func() {
			root, err := normalizer.Normalize(`find . \( -name foo -type f \) -print`)
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(3))

			group := hc.Children()[1]
			Expect(group.Kind).To(Equal(ast.KindBinaryLogicOp))
			Expect(group.Value).To(Equal("-and"))
			Expect(group.NumChildren()).To(Equal(2))
		})

		It("should flatten nested singleton groups around a deferred operator", func() {
			root, err := normalizer.Normalize(`find . \( \( -name a \) -o \( -name b \) \)`)
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))

			op := hc.RightChild()
			Expect(op.Value).To(Equal("-or"))
			Expect(op.NumChildren()).To(Equal(2))
			Expect(op.LeftChild().LeftChild().Value).To(Equal("a"))
			Expect(op.RightChild().LeftChild().Value).To(Equal("b"))
		})

		It("should reject an unclosed group", func() {
			_, err := normalizer.Normalize(`find . \( -name foo`)
			Expect(err).To(MatchError(normalize.ErrUnbalancedParentheses))
		})

		It("should reject a close without an open", func() {
			_, err := normalizer.Normalize(`find . -name foo \)`)
			Expect(err).To(MatchError(normalize.ErrUnbalancedParentheses))
		})
	})

	Describe("embedded commands", func() {
		It("should nest the -exec utility under the flag with its terminator", func() {
			root, err := normalizer.Normalize(`find . -exec rm {} \;`)
			Expect(err).NotTo(HaveOccurred())

			flag := head(root).RightChild()
			Expect(flag.Kind).To(Equal(ast.KindFlag))
			Expect(flag.Value).To(Equal("-exec::;"))

			sub := flag.LeftChild()
			Expect(sub.Kind).To(Equal(ast.KindHeadCommand))
			Expect(sub.Value).To(Equal("rm"))
			Expect(sub.LeftChild().Value).To(Equal("{}"))
			Expect(sub.LeftChild().ArgType).To(Equal(ast.ArgTypeReservedWord))
		})

		It("should record a plus terminator", func() {
			root, err := normalizer.Normalize("find . -exec grep -l foo {} +")
			Expect(err).NotTo(HaveOccurred())

			flag := head(root).RightChild()
			Expect(flag.Value).To(Equal("-exec::+"))
			Expect(flag.LeftChild().Value).To(Equal("grep"))
		})

		It("should assume a semicolon when the terminator is missing", func() {
			root, err := normalizer.Normalize("find . -exec rm {}")
			Expect(err).NotTo(HaveOccurred())

			Expect(head(root).RightChild().Value).To(Equal("-exec::;"))
		})

		It("should nest the command run by a shell wrapper", func() {
			root, err := normalizer.Normalize("ls | xargs rm")
			Expect(err).NotTo(HaveOccurred())

			pipe := head(root)
			Expect(pipe.Kind).To(Equal(ast.KindPipeline))
			Expect(pipe.NumChildren()).To(Equal(2))

			wrapper := pipe.RightChild()
			Expect(wrapper.Symbol()).To(Equal("HEADCOMMAND_xargs"))
			Expect(wrapper.LeftChild().Symbol()).To(Equal("HEADCOMMAND_rm"))
		})

		It("should keep a utility name after a plain flag as an argument", func() {
			root, err := normalizer.Normalize("grep -e sort file")
			Expect(err).NotTo(HaveOccurred())

			flag := head(root).LeftChild()
			Expect(flag.Symbol()).To(Equal("FLAG_-e"))
			Expect(flag.LeftChild().Kind).To(Equal(ast.KindArgument))
			Expect(flag.LeftChild().Value).To(Equal("sort"))
		})
	})

	Describe("substitutions", func() {
		It("should nest a command substitution body", func() {
			root, err := normalizer.Normalize("ls $(find . -type d)")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.Value).To(Equal("ls"))

			sub := hc.LeftChild()
			Expect(sub.Kind).To(Equal(ast.KindCommandSubstitution))
			Expect(sub.LeftChild().Symbol()).To(Equal("HEADCOMMAND_find"))
		})

		It("should record the direction of a process substitution", func() {
			root, err := normalizer.Normalize("diff <(sort a) <(sort b)")
			Expect(err).NotTo(HaveOccurred())

			hc := head(root)
			Expect(hc.NumChildren()).To(Equal(2))

			sub := hc.LeftChild()
			Expect(sub.Kind).To(Equal(ast.KindProcessSubstitution))
			Expect(sub.Value).To(Equal("<"))
			Expect(sub.LeftChild().Symbol()).To(Equal("HEADCOMMAND_sort"))
		})
	})

	Describe("pipelines", func() {
		It("should keep pipeline stages in order", func() {
			root, err := normalizer.Normalize("find . -type f | grep foo | wc -l")
			Expect(err).NotTo(HaveOccurred())

			pipe := head(root)
			Expect(pipe.Kind).To(Equal(ast.KindPipeline))
			Expect(pipe.NumChildren()).To(Equal(3))
			Expect(pipe.Children()[0].Value).To(Equal("find"))
			Expect(pipe.Children()[1].Value).To(Equal("grep"))
			Expect(pipe.Children()[2].Value).To(Equal("wc"))
		})

		It("should reject a stage list with even arity", func() {
			normalizer := newNormalizer(normalize.DefaultOptions())

			syn := &shell.SynNode{
				Kind: shell.SynPipeline,
				Parts: []*shell.SynNode{
					{Kind: shell.SynCommand, Parts: []*shell.SynNode{{Kind: shell.SynWord, Word: "ls"}}},
					{Kind: shell.SynOperator, Word: "|"},
				},
			}

			_, err := normalizer.NormalizeSyntax(syn, "ls |")
			Expect(err).To(MatchError(normalize.ErrPipelineArity))
		})
	})

	Describe("failures", func() {
		It("should reject empty input", func() {
			_, err := normalizer.Normalize("   ")
			Expect(err).To(MatchError(shell.ErrEmptyCommand))
		})

		It("should reject input that is empty after fixups", func() {
			_, err := normalizer.Normalize("sudo")
			Expect(err).To(MatchError(shell.ErrEmptyCommand))
		})

		It("should reject a command without a registered head", func() {
			_, err := normalizer.Normalize("frobnicate stuff")
			Expect(err).To(MatchError(normalize.ErrMissingHeadCommand))
		})

		It("should reject a flag with nothing to attach to", func() {
			_, err := normalizer.Normalize("frobnicate -x")
			Expect(err).To(MatchError(normalize.ErrNoAttachPoint))
		})

		It("should reject conditional lists", func() {
			_, err := normalizer.Normalize("mkdir -p dir && ls dir")
			Expect(err).To(MatchError(normalize.ErrMultiStatementList))
		})

		It("should reject control flow", func() {
			_, err := normalizer.Normalize("for f in *; do cat $f; done")
			Expect(err).To(MatchError(normalize.ErrUnsupportedConstruct))
		})

		It("should reject redirections", func() {
			_, err := normalizer.Normalize("find . -type f > out.txt")
			Expect(err).To(MatchError(normalize.ErrUnsupportedConstruct))
		})

		It("should stop at the recursion limit", func() {
			opts := normalize.DefaultOptions()
			opts.MaxDepth = 1

			_, err := newNormalizer(opts).Normalize("ls $(ls $(ls))")
			Expect(err).To(MatchError(normalize.ErrDepthExceeded))
		})
	})
})

// treeValues collects every node value in the subtree, pre-order.
func treeValues(node *ast.Node) []string {
	out := []string{node.Value}
	for _, child := range node.Children() {
		out = append(out, treeValues(child)...)
	}

	return out
}
