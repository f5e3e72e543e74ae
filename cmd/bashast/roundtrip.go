package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/bashast/internal/codec"
	"github.com/smykla-labs/bashast/internal/render"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [command...]",
	Short: "Check a command survives the tree codec",
	Long:  "Roundtrip normalizes a command, linearizes the tree, reconstructs it, and compares the loose renderings of both trees.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoundtrip,
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	normalizer, _, log, err := setup(cmd)
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

	symbols := codec.Linearize(tree)

	rebuilt, err := codec.New(normalizer.Resolver(), log).Delinearize(symbols)
	if err != nil {
		return err
	}

	original, err := render.Command(tree, render.Loose, render.OriginalOrder)
	if err != nil {
		return err
	}

	reconstructed, err := render.Command(rebuilt, render.Loose, render.OriginalOrder)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "original:      %s\n", original)
	fmt.Fprintf(out, "reconstructed: %s\n", reconstructed)

	if original != reconstructed {
		fmt.Fprintln(out, "MISMATCH")
	}

	return nil
}
