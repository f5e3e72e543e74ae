package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smykla-labs/bashast/internal/config"
	"github.com/smykla-labs/bashast/internal/grammar"
	"github.com/smykla-labs/bashast/internal/normalize"
	"github.com/smykla-labs/bashast/internal/render"
	pkgconfig "github.com/smykla-labs/bashast/pkg/config"
	"github.com/smykla-labs/bashast/pkg/logger"
)

// ErrBadFlagValue is returned for a flag value outside its accepted set.
var ErrBadFlagValue = errors.New("invalid flag value")

// setup loads configuration and builds the normalizer every subcommand works
// with.
func setup(cmd *cobra.Command) (*normalize.Normalizer, *pkgconfig.Config, logger.Logger, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		return nil, nil, nil, err
	}

	level := cfg.Log.GetLevel()

	if flagLevel, ferr := cmd.Root().PersistentFlags().GetString("log-level"); ferr == nil && flagLevel != "" {
		level = flagLevel
	}

	log := logger.New(logger.Options{Level: parseLevel(level)})

	lookup, err := grammar.NewStaticLookup()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := normalize.Options{
		NormalizeDigits:       cfg.Normalize.IsDigitsEnabled(),
		NormalizeLongPatterns: cfg.Normalize.IsLongPatternsEnabled(),
		RecoverQuotes:         cfg.Normalize.IsRecoverQuotesEnabled(),
		SplitFlags:            cfg.Normalize.IsSplitFlagsEnabled(),
		MaxDepth:              cfg.Normalize.GetMaxDepth(),
	}

	return normalize.New(lookup, opts, log), cfg, log, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// renderOptions resolves the rendering options from the subcommand's flags,
// falling back to the configuration.
func renderOptions(cmd *cobra.Command, cfg *pkgconfig.Config) (render.Options, error) {
	mode := cfg.Render.GetMode()
	if v, err := cmd.Flags().GetString("mode"); err == nil && v != "" {
		mode = v
	}

	order := cfg.Render.GetFlagOrder()
	if v, err := cmd.Flags().GetString("flag-order"); err == nil && v != "" {
		order = v
	}

	values := cfg.Render.GetValues()
	if v, err := cmd.Flags().GetString("values"); err == nil && v != "" {
		values = v
	}

	var opts render.Options

	switch mode {
	case pkgconfig.ModeStrict:
		opts.Mode = render.Strict
	case pkgconfig.ModeLoose:
		opts.Mode = render.Loose
	default:
		return opts, errors.Wrapf(ErrBadFlagValue, "mode %q", mode)
	}

	switch order {
	case pkgconfig.FlagOrderOriginal:
		opts.FlagOrder = render.OriginalOrder
	case pkgconfig.FlagOrderLexical:
		opts.FlagOrder = render.LexicalOrder
	default:
		return opts, errors.Wrapf(ErrBadFlagValue, "flag-order %q", order)
	}

	switch values {
	case pkgconfig.ValuesLiteral:
		opts.ValueMode = render.LiteralValues
	case pkgconfig.ValuesType:
		opts.ValueMode = render.TypeValues
	default:
		return opts, errors.Wrapf(ErrBadFlagValue, "values %q", values)
	}

	return opts, nil
}

// commandText resolves the bash command to work on: the joined positional
// arguments, an interactive prompt on a terminal, or stdin otherwise.
func commandText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		var text string

		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Bash command").
				Placeholder(`find . -name "*.go"`).
				Value(&text),
		))

		if err := form.Run(); err != nil {
			return "", err
		}

		return text, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
