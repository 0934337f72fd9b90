package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/camkes-http/makefs/internal/generator"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "makefs.yaml"

// Config represents the top-level configuration structure parsed from makefs.yaml.
// It describes where web assets live, where generated headers go, how
// arrays are rendered, and how the tool logs.
type Config struct {
	// Source describes the directory scanned for assets.
	Source SourceConfig `yaml:"source"`
	// Output describes where generated headers are written.
	Output OutputConfig `yaml:"output"`
	// Gen controls how byte arrays are rendered.
	Gen GenConfig `yaml:"gen"`
	// Watch configures the watch command.
	Watch WatchConfig `yaml:"watch"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig configures asset discovery.
type SourceConfig struct {
	// Dir is the web asset directory.
	Dir string `yaml:"dir"`
	// Extensions is the allow-list of file extensions, in discovery order.
	Extensions []string `yaml:"extensions"`
}

// OutputConfig configures generated header locations.
type OutputConfig struct {
	// Dir is the header directory. Empty means <source.dir>/includes.
	Dir string `yaml:"dir"`
	// Manifest is the file name of the aggregate header.
	Manifest string `yaml:"manifest"`
}

// GenConfig controls array rendering.
type GenConfig struct {
	// WrapWidth is the column budget for array body lines.
	WrapWidth int `yaml:"wrap_width"`
	// Newline is "crlf" (every LF is emitted as CR LF) or "preserve".
	Newline string `yaml:"newline"`
	// SymbolPrefix is prepended to every array name.
	SymbolPrefix string `yaml:"symbol_prefix"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is how long to wait for a burst of file events to settle (e.g. "200ms").
	Debounce string `yaml:"debounce"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stdout.
	Path string `yaml:"path"`
}

var validNewlineModes = map[string]bool{
	generator.NewlineCRLF:     true,
	generator.NewlinePreserve: true,
}

// Load reads and parses the config file at path. A missing file yields an
// empty Config unless required is set.
// Defaults are not applied; callers run ApplyDefaults and Validate after
// overriding fields from flags.
func Load(path string, required bool) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Source.Dir == "" {
		config.Source.Dir = "web"
	}
	if len(config.Source.Extensions) == 0 {
		config.Source.Extensions = []string{".html", ".js"}
	}
	if config.Output.Dir == "" {
		config.Output.Dir = filepath.Join(config.Source.Dir, "includes")
	}
	if config.Output.Manifest == "" {
		config.Output.Manifest = "web_files.h"
	}
	if config.Gen.WrapWidth == 0 {
		config.Gen.WrapWidth = generator.DefaultWrapWidth
	}
	if config.Gen.Newline == "" {
		config.Gen.Newline = generator.NewlineCRLF
	}
	if config.Gen.SymbolPrefix == "" {
		config.Gen.SymbolPrefix = generator.DefaultSymbolPrefix
	}
	if config.Watch.Debounce == "" {
		config.Watch.Debounce = "200ms"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors, such as malformed
// extensions or an unsupported newline mode.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	seenExt := make(map[string]bool)
	for _, ext := range config.Source.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension: %q (must start with '.')", ext)
		}
		if strings.ContainsAny(ext, `/\*?[`) {
			return fmt.Errorf("invalid extension: %q (must not contain path or glob characters)", ext)
		}
		if seenExt[ext] {
			return fmt.Errorf("duplicate extension: %s", ext)
		}
		seenExt[ext] = true
	}

	if config.Output.Manifest != filepath.Base(config.Output.Manifest) {
		return fmt.Errorf("manifest must be a file name, not a path: %s", config.Output.Manifest)
	}

	if config.Gen.WrapWidth < generator.MinWrapWidth {
		return fmt.Errorf("wrap_width %d is too small (minimum %d)", config.Gen.WrapWidth, generator.MinWrapWidth)
	}
	if !validNewlineModes[config.Gen.Newline] {
		return fmt.Errorf("invalid newline mode: %s (allowed: %s, %s)", config.Gen.Newline, generator.NewlineCRLF, generator.NewlinePreserve)
	}
	if !generator.IsIdentifier(config.Gen.SymbolPrefix) {
		return fmt.Errorf("symbol_prefix %q is not a valid C identifier", config.Gen.SymbolPrefix)
	}

	if config.Watch.Debounce != "" {
		d, err := time.ParseDuration(config.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("invalid watch debounce %q: %w", config.Watch.Debounce, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid watch debounce %q: must be positive", config.Watch.Debounce)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// Layout builds the generator layout from a defaulted configuration.
func (c *Config) Layout() generator.Layout {
	return generator.Layout{
		SourceDir:    c.Source.Dir,
		OutputDir:    c.Output.Dir,
		ManifestPath: filepath.Join(c.Output.Dir, c.Output.Manifest),
		Extensions:   c.Source.Extensions,
	}
}

// Options returns the generator options for a defaulted configuration.
func (c *Config) Options() generator.Options {
	return generator.Options{
		Encode: generator.EncodeOptions{
			WrapWidth: c.Gen.WrapWidth,
			CRLF:      c.Gen.Newline == generator.NewlineCRLF,
		},
		SymbolPrefix: c.Gen.SymbolPrefix,
	}
}

// DebounceInterval returns the parsed watch debounce, falling back to 200ms.
func (c *Config) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 200 * time.Millisecond
	}
	return d
}
