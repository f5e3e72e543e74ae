package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/bashast/internal/render"
)

var templateCmd = &cobra.Command{
	Use:   "template [command...]",
	Short: "Render a command's abstract template",
	Long:  "Template renders a command with flags sorted lexically and argument values replaced by their semantic type tags.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
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

	template, err := render.Template(tree, render.Strict)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), template)

	return nil
}
