package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/worldview/internal/config"
	"github.com/alexisbeaulieu97/worldview/internal/logger"
	"github.com/alexisbeaulieu97/worldview/internal/preferences"
	"github.com/alexisbeaulieu97/worldview/internal/restcountries"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Client   *restcountries.Client
	Registry *prometheus.Registry

	closers []io.Closer
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Fix the configuration file or WORLDVIEW_* environment variables.")
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = flags.apiURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, newCommandError("start", "validating flags", err, "Check the values passed to --api-url and --log-level.")
	}

	app := &AppContext{Config: cfg}

	log, err := app.openLogger(flags.verbose)
	if err != nil {
		return nil, newCommandError("start", "opening log", err, "Set log_file to a writable path or run with --verbose.")
	}
	app.Logger = log.WithCorrelationID().WithFields(map[string]any{"command": cmd.Name()})

	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, err := restcountries.New(restcountries.Options{
		BaseURL:   cfg.APIURL,
		Timeout:   cfg.Timeout,
		Logger:    app.Logger,
		Metrics:   restcountries.NewMetrics(app.Registry),
		UserAgent: "worldview/" + version,
	})
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating API client", err, "Use an http or https URL for api_url.")
	}
	app.Client = client

	return app, nil
}

// openLogger writes to stderr when verbose, otherwise to the configured log
// file so the terminal UI owns the screen.
func (a *AppContext) openLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.New(logger.Options{Level: a.Config.LogLevel, HumanReadable: true, Writer: os.Stderr})
	}
	if a.Config.LogFile == "" {
		return logger.Nop(), nil
	}

	file, err := logger.OpenFile(a.Config.LogFile)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, file)
	return logger.New(logger.Options{Level: a.Config.LogLevel, Writer: file})
}

// ThemeStore opens the persisted theme preference.
func (a *AppContext) ThemeStore(ambient theme.Ambient) (*theme.Store, error) {
	prefs, err := preferences.NewStore(a.Config.PreferencesPath)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	return theme.New(prefs, ambient, theme.WithLogger(a.Logger)), nil
}

// Close releases files held by the context.
func (a *AppContext) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
