package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/worldview/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Print or toggle the persisted colour theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, rootFlags, len(args) == 1)
		},
	}

	return cmd
}

func runTheme(cmd *cobra.Command, rootFlags *rootFlags, toggle bool) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	store, err := app.ThemeStore(theme.TerminalAmbient(termenv.NewOutput(os.Stdout)))
	if err != nil {
		return newCommandError("theme", "loading theme preference", err, "Check preferences_path permissions.")
	}

	if !toggle {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", store.Mode(), store.Source())
		return nil
	}

	mode, err := store.Toggle()
	if err != nil {
		return newCommandError("theme", "saving theme preference", err, "Check preferences_path permissions.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", mode)
	return nil
}
