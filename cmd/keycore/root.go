package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/keycore/internal/config"
	"github.com/dshills/keycore/internal/editor"
	"github.com/dshills/keycore/internal/logging"
	"github.com/dshills/keycore/internal/renderer/backend"
)

// terminalFactory opens the terminal the editor runs on.
type terminalFactory func() (backend.Terminal, error)

func defaultTerminal() (backend.Terminal, error) {
	return backend.NewTcellTerminal()
}

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath   string
	logFile      string
	logLevel     string
	pollInterval string

	newTerminal terminalFactory
}

func newRootCmd(newTerminal terminalFactory) *cobra.Command {
	o := &rootOptions{newTerminal: newTerminal}

	cmd := &cobra.Command{
		Use:   "keycore",
		Short: "A small modal terminal text editor",
		Long: `keycore edits a single in-memory document in the terminal.

It starts in insert mode. Esc switches to normal mode, i back to insert
and v to visual. Ctrl+Q quits. Keybindings are read from the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runEditor(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to configuration file (.toml, .json, .yaml)")
	flags.StringVar(&o.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&o.pollInterval, "poll-interval", "", "Key poll interval, e.g. 300ms")

	cmd.AddCommand(
		newSchemaCmd(),
		newKeymapCmd(o),
		newConfigCmd(o),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig loads the configuration with flags applied over every other
// layer. Without --config the user config directory is searched.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = defaultConfigPath()
	}

	opts := []config.Option{config.WithPath(path)}
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		opts = append(opts, config.WithOverride("log.file", o.logFile))
	}
	if flags.Changed("log-level") {
		opts = append(opts, config.WithOverride("log.level", o.logLevel))
	}
	if flags.Changed("poll-interval") {
		opts = append(opts, config.WithOverride("editor.poll_interval", o.pollInterval))
	}

	return config.Load(opts...)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keycore", "keycore.toml")
}

// runEditor runs the editor until it quits or a signal arrives. The
// terminal is torn down on every path out of the editor.
func (o *rootOptions) runEditor(cmd *cobra.Command) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer closer.Close()

	table, err := cfg.Table()
	if err != nil {
		return err
	}
	interval, err := cfg.PollInterval()
	if err != nil {
		return err
	}

	term, err := o.newTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	ed := editor.New(term,
		editor.WithLogger(logger),
		editor.WithKeymap(table),
		editor.WithPollInterval(interval),
	)
	defer ed.Close()

	logger.Info("configuration loaded", "source", cfg.Source, "keymap", table.Name, "session", ed.Session())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = ed.Run(ctx)
	switch {
	case errors.Is(err, editor.ErrQuit), errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}
