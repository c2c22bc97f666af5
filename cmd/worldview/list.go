package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/worldview/internal/country"
)

type listOptions struct {
	search     string
	region     string
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries, optionally filtered by name and region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Case-insensitive substring of the common name")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "Region to filter by (Africa, Americas, Asia, Europe, Oceania)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	region, err := country.ParseRegion(opts.region)
	if err != nil {
		return newCommandError("list countries", "parsing --region", err, "Pick one of Africa, Americas, Asia, Europe or Oceania.")
	}
	filter := country.Filter{Search: opts.search, Region: region}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	countries, err := app.Client.List(cmd.Context())
	if err != nil {
		app.Logger.Error(err, "failed to load countries")
		return newCommandError("list countries", country.ListErrorMessage, err, "Check your network connection or --api-url.")
	}

	visible := filter.Apply(countries)
	app.Logger.WithFields(map[string]any{"total": len(countries), "visible": len(visible)}).Info("countries listed")

	if opts.jsonOutput {
		return renderListJSON(cmd, visible)
	}
	if len(visible) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), country.NoMatchMessage)
		return nil
	}
	return renderListTable(cmd, visible)
}

func renderListTable(cmd *cobra.Command, countries []country.Country) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "CODE\tNAME\tREGION\tCAPITAL\tPOPULATION")

	maxName := nameWidth(cmd.OutOrStdout())
	for _, c := range countries {
		p := country.Present(c)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			p.Code,
			truncate(p.Name, maxName),
			p.Region,
			p.Capital,
			p.Population,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version   string            `json:"version"`
	Count     int               `json:"count"`
	Countries []country.Country `json:"countries"`
}

func renderListJSON(cmd *cobra.Command, countries []country.Country) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Count:     len(countries),
		Countries: countries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// nameWidth limits the name column on narrow terminals. Non-terminal writers
// are never truncated.
func nameWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width >= 100 {
		return 0
	}
	return max(12, width-60)
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	return string(runes[:limit-1]) + "…"
}
