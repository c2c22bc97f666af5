package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <code>",
		Short: "Show details for a country by its three-letter code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output country details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, raw string, opts *showOptions) error {
	code, err := country.ParseCode(raw)
	if err != nil {
		return newCommandError("show country", country.NotFoundMessage(strings.ToUpper(raw)), err, "Codes are ISO 3166-1 alpha-3, e.g. FRA.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	c, err := app.Client.Get(cmd.Context(), code)
	switch {
	case apperrors.IsNotFound(err):
		return newCommandError("show country", country.NotFoundMessage(code), err, "Run 'worldview list' to see valid codes.")
	case err != nil:
		app.Logger.WithFields(map[string]any{"code": code}).Error(err, "failed to load country")
		return newCommandError("show country", country.DetailErrorMessage, err, "Check your network connection or --api-url.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(c)
	}

	return renderShowTable(cmd, country.Present(c))
}

func renderShowTable(cmd *cobra.Command, p country.Presentation) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", p.Name, p.Code)
	fmt.Fprintf(out, "Population: %s\n", p.Population)
	fmt.Fprintf(out, "Region:     %s\n", p.Region)
	fmt.Fprintf(out, "Sub Region: %s\n", p.Subregion)
	fmt.Fprintf(out, "Capital:    %s\n", p.Capital)
	fmt.Fprintf(out, "Flag:       %s\n", p.FlagAlt)
	if p.FlagSVG != "" {
		fmt.Fprintf(out, "            %s\n", p.FlagSVG)
	}

	if !p.HasBorders() {
		fmt.Fprintf(out, "\n%s\n", country.NoBordersMessage)
		return nil
	}
	fmt.Fprintf(out, "\nBorder Countries: %s\n", strings.Join(p.Borders, ", "))
	return nil
}
