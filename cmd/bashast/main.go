package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "bashast",
	Short:        "Bash command normalization toolchain",
	Long:         "bashast parses bash commands and rewrites them into normalized, semantically typed command trees for corpus building.",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(parseCmd, tokensCmd, templateCmd, linearizeCmd, roundtripCmd, batchCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (TOML)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
