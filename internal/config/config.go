package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/red/internal/config/loader"
	"github.com/dshills/red/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RED_"

// envMapping holds the short variable names.
var envMapping = map[string]string{
	"RED_LOG_LEVEL":    "log.level",
	"RED_LOG_FILE":     "log.file",
	"RED_TAB_WIDTH":    "editor.tab_width",
	"RED_LINE_NUMBERS": "editor.line_numbers",
}

// Config holds all settings.
type Config struct {
	Editor EditorConfig `toml:"editor" yaml:"editor"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// EditorConfig holds editing and display settings.
type EditorConfig struct {
	// TabWidth is the number of cells between tab stops.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
	// LineNumbers enables the line number gutter.
	LineNumbers bool `toml:"line_numbers" yaml:"line_numbers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File is the log file path. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{TabWidth: 4, LineNumbers: true},
		Log:    LogConfig{Level: "info", File: "red.log"},
	}
}

// Options controls where Load reads from.
type Options struct {
	// Path is the config file. Empty means DefaultPath().
	Path string
	// FS reads the config file. Nil means the OS file system.
	FS loader.FileSystem
	// Environ returns the environment. Nil means os.Environ.
	Environ func() []string
}

// DefaultPath returns the user config file location,
// $XDG_CONFIG_HOME/red/config.toml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "red.toml"
	}
	return filepath.Join(dir, "red", "config.toml")
}

// Load merges defaults, the config file and the environment, then
// validates the result. A missing config file is not an error.
func Load(opts Options) (*Config, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.OSFS{}
	}
	env := loader.NewEnvLoader(EnvPrefix, envMapping).
		WithKnownPaths(slices.Collect(maps.Values(envMapping))...)
	if opts.Environ != nil {
		env.WithEnviron(opts.Environ)
	}

	merged := make(map[string]any)
	for _, l := range []loader.Loader{loader.NewFileLoaderWithFS(fsys, path), env} {
		m, err := l.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies the merged map on top of the defaults.
func decode(m map[string]any) (*Config, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, missing.String())
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("%w: editor.tab_width must be between 1 and 16, got %d", ErrValidationFailed, c.Editor.TabWidth)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrValidationFailed, err)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
