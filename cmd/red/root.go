package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/red/internal/app"
	"github.com/dshills/red/internal/config"
	"github.com/dshills/red/internal/input/keymap"
	"github.com/dshills/red/internal/logging"
	"github.com/dshills/red/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// errNotTerminal is returned when stdin or stdout is not a terminal.
var errNotTerminal = errors.New("red must be run in a terminal")

// cli holds the flags and the environment hooks of one invocation.
type cli struct {
	configPath string
	logLevel   string
	logFile    string

	isTerminal func() bool
	newBackend func() (backend.Backend, error)
	environ    func() []string
}

func defaultCLI() *cli {
	return &cli{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		newBackend: func() (backend.Backend, error) {
			return backend.NewTerminal()
		},
		environ: os.Environ,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "red [flags] [FILE]",
		Short:         "A small modal text editor",
		Long:          "red edits one file in the terminal with Vim-style normal and insert modes.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.run(cmd, path)
		},
	}

	cmd.Flags().StringVarP(&c.configPath, "config", "c", "",
		"config file (default: "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&c.logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	cmd.Flags().StringVar(&c.logFile, "log-file", "",
		"log file, empty disables logging")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(config.Options{Path: c.configPath, Environ: c.environ})
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = c.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if !c.isTerminal() {
		return errNotTerminal
	}
	b, err := c.newBackend()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Path:    path,
		Config:  cfg,
		Backend: b,
		Keymaps: keymap.Default(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	return application.Run()
}

// openLogger creates the logger described by cfg. The returned function
// closes the log file.
func openLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	if cfg.Log.File == "" {
		return logging.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: io.Writer(f),
		Prefix: "red",
	})
	return logger, func() { _ = f.Close() }, nil
}
