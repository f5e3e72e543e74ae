package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/bashast/pkg/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse [command...]",
	Short: "Normalize a bash command and print its tree",
	Long:  "Parse normalizes a bash command into its typed command tree and prints an indented rendering with argument types.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	normalizer, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	text, err := commandText(args)
	if err != nil {
		return err
	}

	tree, err := normalizer.Normalize(text)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ast.Sprint(tree))

	return nil
}
