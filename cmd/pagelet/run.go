package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/tui"
	"github.com/alexisbeaulieu97/pagelet/internal/watcher"
)

func newRunCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive terminal UI",
		Long: `Run hosts the page in the terminal. Tab moves focus, enter or space
clicks, and typing fills the focused form field. With --watch the page is
reloaded, and the session restarted, whenever the page file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(cmd, root)
		},
	}

	cmd.Flags().Bool("watch", false, "Reload the page when the file changes")

	return cmd
}

func runHost(cmd *cobra.Command, root *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start the terminal UI", "stdout is not a terminal", errors.New("not a terminal"), "Use `pagelet replay <script>` for headless runs.")
	}

	cfg, err := root.load(cmd)
	if err != nil {
		return err
	}
	if cfg.Page.Watch && cfg.Page.Path == "" {
		return newCommandError("watch the page", "no page file given", errors.New("--watch needs --page"), "Pass --page with the file to watch.")
	}

	// The UI owns the terminal, so logs only go to a file.
	log, closer, err := root.logger(cfg, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	model, err := tui.NewModel(pageLoader(cfg.Page.Path), log)
	if err != nil {
		return newCommandError("load page", pageLabel(cfg.Page.Path), err, "Run `pagelet check --page <file>` to see what is wrong with the page.")
	}

	opts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout())}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)

	if cfg.Page.Watch {
		w, err := watcher.New(cfg.Page.Path, cfg.Page.Debounce, log, func(doc *page.Document, err error) {
			program.Send(tui.PageReloadedMsg{Doc: doc, Err: err})
		})
		if err != nil {
			return newCommandError("watch the page", cfg.Page.Path, err, "Check that the page file's directory exists and is readable.")
		}
		defer w.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Error(err, "watcher stopped")
			}
		}()
	}

	log.Info("starting terminal UI", "page", pageLabel(cfg.Page.Path), "watch", cfg.Page.Watch)
	if _, err := program.Run(); err != nil {
		return newCommandError("run the terminal UI", pageLabel(cfg.Page.Path), err, "Re-run with --log-file to capture details.")
	}
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func pageLabel(path string) string {
	if path == "" {
		return page.DefaultName
	}
	return path
}
