package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/pagelet/internal/config"
	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
)

type rootFlags struct {
	configPath string
	verbose    bool
	v          *viper.Viper
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
	"page":      "page.path",
	"watch":     "page.watch",
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: config.New()}

	cmd := &cobra.Command{
		Use:   "pagelet",
		Short: "pagelet runs an interactive page in the terminal",
		Long: `pagelet hosts a small interactive page: a colour-coded counter, a theme
toggle, an FAQ accordion, tabs and a validated registration form.
Without a subcommand it starts the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runHost(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a pagelet config file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("page", "", "Page document to load instead of the built-in page")
	cmd.Flags().Bool("watch", false, "Reload the page when the file changes")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load resolves configuration for cmd from defaults, the config file,
// PAGELET_ environment variables and flags.
func (f *rootFlags) load(cmd *cobra.Command) (*config.Config, error) {
	for name, key := range flagKeys {
		if err := config.BindFlag(f.v, key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(f.v, f.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", configLabel(f.configPath), err, "Check the config file and PAGELET_* environment variables.")
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// logger builds a logger for commands that print to the terminal.
func (f *rootFlags) logger(cfg *config.Config, w io.Writer) (*logger.Logger, io.Closer, error) {
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, newCommandError("open log file", cfg.Log.File, err, "Pass a writable --log-file path.")
		}
		log, err := logger.New(logger.Options{Level: cfg.Log.Level, Writer: file})
		if err != nil {
			_ = file.Close()
			return nil, nil, err
		}
		return log, file, nil
	}

	if w == nil {
		return logger.Discard(), nopCloser{}, nil
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human, Writer: w})
	if err != nil {
		return nil, nil, err
	}
	return log, nopCloser{}, nil
}

// pageLoader returns a loader yielding a fresh document per call: the
// embedded page when path is empty, otherwise the file re-read from disk.
func pageLoader(path string) func() (*page.Document, error) {
	if path == "" {
		return func() (*page.Document, error) { return page.Default(), nil }
	}
	return func() (*page.Document, error) { return page.Load(path) }
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func configLabel(path string) string {
	if path == "" {
		return "defaults and environment"
	}
	return path
}
