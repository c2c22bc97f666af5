package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	apiURL     string
	logLevel   string
	verbose    bool
	startPath  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "worldview",
		Short:         "Browse the countries of the world from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive browser
			return runBrowser(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ~/.worldview/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Override the REST Countries base URL")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Write logs to stderr instead of the log file")
	cmd.Flags().StringVar(&flags.startPath, "path", "/", "Route to open on launch, e.g. /country/FRA")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
