package normalize_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-labs/bashast/internal/grammar/mocks"
	"github.com/smykla-labs/bashast/internal/normalize"
	"github.com/smykla-labs/bashast/pkg/ast"
)

var _ = Describe("Resolver", func() {
	var (
		lookup   *mocks.MockLookup
		resolver *normalize.Resolver
	)

	BeforeEach(func() {
		lookup = mocks.NewMockLookup(gomock.NewController(GinkgoT()))
		resolver = normalize.NewResolver(lookup)
	})

	Describe("ForFlag", func() {
		It("should pass the flag through to the grammar", func() {
			lookup.EXPECT().FlagArgType("find", "-name").Return(ast.ArgTypePattern, true)

			argType, takesArg := resolver.ForFlag("find", "-name")
			Expect(takesArg).To(BeTrue())
			Expect(argType).To(Equal(ast.ArgTypePattern))
		})

		It("should strip the terminator suffix of an embedding flag", func() {
			lookup.EXPECT().FlagArgType("find", "-exec").Return(ast.ArgTypeUtility, true)

			argType, takesArg := resolver.ForFlag("find", "-exec::;")
			Expect(takesArg).To(BeTrue())
			Expect(argType).To(Equal(ast.ArgTypeUtility))
		})
	})

	Describe("ForHeadCommand", func() {
		It("should fail for a command the grammar does not know", func() {
			lookup.EXPECT().PossibleArgTypes("frobnicate").Return(nil, false)

			_, err := resolver.ForHeadCommand("frobnicate", "word")
			Expect(err).To(MatchError(normalize.ErrUnresolvableArgType))
		})

		It("should run the heuristic over the command's declared types", func() {
			lookup.EXPECT().PossibleArgTypes("grep").
				Return([]ast.ArgType{ast.ArgTypePattern, ast.ArgTypeFile}, true)

			argType, err := resolver.ForHeadCommand("grep", "foo.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(argType).To(Equal(ast.ArgTypeFile))
		})
	})

	Describe("TypeCheck", func() {
		DescribeTable("heuristic outcomes",
			func(word string, possible []ast.ArgType, want ast.ArgType) {
				got, err := normalize.TypeCheck(word, possible)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			},
			Entry("reserved plus", "+", []ast.ArgType(nil), ast.ArgTypeReservedWord),
			Entry("reserved semicolon", ";", []ast.ArgType(nil), ast.ArgTypeReservedWord),
			Entry("reserved braces", "{}", []ast.ArgType(nil), ast.ArgTypeReservedWord),
			Entry("all digits", "42", []ast.ArgType{ast.ArgTypeNumber}, ast.ArgTypeNumber),
			Entry("size unit", "10k", []ast.ArgType{ast.ArgTypeSize}, ast.ArgTypeSize),
			Entry("time unit", "-7d", []ast.ArgType{ast.ArgTypeTime}, ast.ArgTypeTime),
			Entry("file beats pattern", "x",
				[]ast.ArgType{ast.ArgTypePattern, ast.ArgTypeFile}, ast.ArgTypeFile),
			Entry("pattern without file", "*.c",
				[]ast.ArgType{ast.ArgTypePattern}, ast.ArgTypePattern),
			Entry("utility fallback", "rm",
				[]ast.ArgType{ast.ArgTypeUtility}, ast.ArgTypeUtility),
			Entry("digits fall through without a numeric type", "42",
				[]ast.ArgType{ast.ArgTypeFile}, ast.ArgTypeFile),
		)

		It("should fail when no candidate type applies", func() {
			_, err := normalize.TypeCheck("word", []ast.ArgType{ast.ArgTypeNumber})
			Expect(err).To(MatchError(normalize.ErrUnresolvableArgType))
		})
	})
})
