package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/bashast/internal/codec"
)

var batchCmd = &cobra.Command{
	Use:   "batch <glob...>",
	Short: "Normalize every command in the matched corpus files",
	Long: "Batch reads one bash command per line from every file matching the " +
		"given globs, normalizes them concurrently, and writes one linearized " +
		"symbol sequence per accepted command. Failed commands are skipped and " +
		"counted unless --fail-fast is set.",
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("workers", 0, "concurrent workers (0 = one per CPU)")
	batchCmd.Flags().Bool("fail-fast", false, "abort on the first normalization failure")
}

type batchResult struct {
	sequence string
	failed   bool
}

//nolint:funlen // sequential pipeline: collect, fan out, report
func runBatch(cmd *cobra.Command, args []string) error {
	normalizer, cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	workers := cfg.Batch.GetWorkers()
	if v, ferr := cmd.Flags().GetInt("workers"); ferr == nil && v > 0 {
		workers = v
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	failFast := cfg.Batch.IsFailFastEnabled()
	if v, ferr := cmd.Flags().GetBool("fail-fast"); ferr == nil && v {
		failFast = true
	}

	commands, err := collectCommands(args)
	if err != nil {
		return err
	}

	start := time.Now()
	results := make([]batchResult, len(commands))

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(workers)

	for i, command := range commands {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			tree, nerr := normalizer.Normalize(command)
			if nerr != nil {
				if failFast {
					return nerr
				}

				log.Warn("skipping command", "command", command, "reason", nerr.Error())
				results[i] = batchResult{failed: true}

				return nil
			}

			results[i] = batchResult{sequence: strings.Join(codec.Linearize(tree), " ")}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	failed := 0

	out := cmd.OutOrStdout()
	for _, result := range results {
		if result.failed {
			failed++

			continue
		}

		fmt.Fprintln(out, result.sequence)
	}

	log.Info("batch complete",
		"commands", humanize.Comma(int64(len(commands))),
		"failed", humanize.Comma(int64(failed)),
		"elapsed", durafmt.Parse(time.Since(start).Round(time.Millisecond)).String(),
	)

	return nil
}

// collectCommands expands the globs and reads one command per non-empty line
// from every matched file.
func collectCommands(patterns []string) ([]string, error) {
	var commands []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}

		for _, path := range matches {
			fileCommands, err := readCommands(path)
			if err != nil {
				return nil, err
			}

			commands = append(commands, fileCommands...)
		}
	}

	return commands, nil
}

func readCommands(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var commands []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Prompt prefixes ("$ ", "# ") are stripped later by the pre-parse
		// fixups, so lines are kept verbatim here.
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		commands = append(commands, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return commands, nil
}
