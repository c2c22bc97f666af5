package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/worldview/internal/theme"
	"github.com/alexisbeaulieu97/worldview/internal/tui/browser"
)

var errNoTerminal = errors.New("standard output is not a terminal")

func runBrowser(cmd *cobra.Command, flags *rootFlags) error {
	route, err := browser.ParseRoute(flags.startPath)
	if err != nil {
		return newCommandError("open browser", "parsing --path", err, "Use / or /country/<CODE>.")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("open browser", "checking terminal", errNoTerminal, "Run 'worldview list' for non-interactive output.")
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	store, err := app.ThemeStore(theme.TerminalAmbient(termenv.NewOutput(os.Stdout)))
	if err != nil {
		return newCommandError("open browser", "loading theme preference", err, "Check preferences_path permissions.")
	}
	unsubscribe := store.Subscribe(func(mode theme.Mode) {
		app.Logger.WithFields(map[string]any{"theme": mode.String()}).Info("theme changed")
	})
	defer unsubscribe()

	app.Logger.WithFields(map[string]any{"route": route.Path()}).Info("launching browser")

	m := browser.NewModel(app.Client, store,
		browser.WithLogger(app.Logger),
		browser.WithStartRoute(route),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		app.Logger.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.Logger.Info("browser closed")
	return nil
}
