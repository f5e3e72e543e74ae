package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/bashast/internal/codec"
)

var linearizeCmd = &cobra.Command{
	Use:   "linearize [command...]",
	Short: "Encode a command's tree as a flat symbol sequence",
	Args:  cobra.ArbitraryArgs,
	RunE:  runLinearize,
}

func runLinearize(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codec.Linearize(tree), " "))

	return nil
}
