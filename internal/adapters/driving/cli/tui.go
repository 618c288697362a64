package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// isTerminal reports whether stdout is a terminal. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the mirror dashboard in the terminal.

Typing in a card searches after a short pause; pick a result to render its
panel. The frame colour follows the on-time odds of the commute card.

Controls:
  Tab, Shift+Tab - Move between inputs
  ↑, ↓           - Move in the dropdown
  Enter          - Search now / Select
  Esc            - Close the dropdown
  Ctrl+R         - Calculate on-time odds
  Ctrl+V         - Voice destination search
  Ctrl+X         - Clear the taxi panel
  Ctrl+C         - Quit

Edits to config.toml while running switch the locale in place.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return ErrNotTerminal
	}

	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer env.dashboard.WaitPings()

	// Reload labels when the config file changes. --locale stays pinned.
	if store, ok := env.store.(*file.ConfigStore); ok {
		watcher, err := file.NewWatcher(store, file.OSLookup, func(s file.Settings) {
			if localeFlag != "" {
				s.Locale = localeFlag
			}
			env.dashboard.SetLabels(s.Labels())
		})
		if err != nil {
			logger.Warn("config watcher disabled: %v", err)
		} else {
			go watcher.Run(ctx)
			defer watcher.Close()
		}
	}

	app, err := tui.NewApp(tui.NewPorts(env.dashboard))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
