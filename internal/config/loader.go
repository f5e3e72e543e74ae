// Package config loads bashast configuration with precedence: built-in
// defaults, then an optional TOML file, then BASHAST_-prefixed environment
// variables.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pkgconfig "github.com/smykla-labs/bashast/pkg/config"
)

const (
	envPrefix = "BASHAST_"
	delim     = "."
)

// ErrConfigNotFound is returned when an explicitly named config file does
// not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Loader loads the merged configuration.
type Loader struct {
	// path is an explicit config file; empty means probe the default
	// locations.
	path string
}

// NewLoader creates a Loader. path may be empty to use the default config
// file locations.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load merges defaults, the config file (if any), and the environment, in
// that order of increasing precedence.
func (l *Loader) Load() (*pkgconfig.Config, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(defaults(), delim), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	path, err := l.configFile()
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading %s", path)
		}
	}

	if err := k.Load(env.Provider(delim, env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	var cfg pkgconfig.Config

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	return &cfg, nil
}

// configFile resolves the config file to load: the explicit path if one was
// given (missing is an error), otherwise the first default location that
// exists (missing is fine).
func (l *Loader) configFile() (string, error) {
	if l.path != "" {
		if _, err := os.Stat(l.path); err != nil {
			return "", errors.Wrapf(ErrConfigNotFound, "%s", l.path)
		}

		return l.path, nil
	}

	for _, candidate := range defaultPaths() {
		if candidate == "" {
			continue
		}

		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", nil
}

func defaultPaths() []string {
	paths := []string{"bashast.toml"}

	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, home+"/bashast/config.toml")
	}

	return paths
}

// envTransform maps BASHAST_SECTION_SOME_FIELD onto "section.some_field".
// Only the first underscore separates the section; the rest belong to the
// field name.
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	key = strings.Replace(key, "_", delim, 1)

	return key, value
}

func defaults() map[string]any {
	return map[string]any{
		"normalize.digits":         true,
		"normalize.long_patterns":  true,
		"normalize.recover_quotes": true,
		"normalize.split_flags":    true,
		"normalize.max_depth":      pkgconfig.DefaultMaxDepth,
		"render.mode":              pkgconfig.ModeStrict,
		"render.flag_order":        pkgconfig.FlagOrderOriginal,
		"render.values":            pkgconfig.ValuesLiteral,
		"batch.workers":            0,
		"batch.fail_fast":          false,
		"log.level":                "info",
	}
}
