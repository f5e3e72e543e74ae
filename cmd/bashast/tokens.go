package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/bashast/internal/render"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [command...]",
	Short: "Render a command's normalized token sequence",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("mode", "", "rendering mode (strict|loose)")
	tokensCmd.Flags().String("flag-order", "", "flag emission order (original|lexical)")
	tokensCmd.Flags().String("values", "", "argument values (literal|type)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	normalizer, cfg, _, err := setup(cmd)
	if err != nil {
		return err
	}

	opts, err := renderOptions(cmd, cfg)
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

	tokens, err := render.Tokens(tree, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokens, " "))

	return nil
}
