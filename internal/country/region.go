package country

import (
	"fmt"
	"strings"
)

// Region is the continental grouping attached to a country record.
type Region string

const (
	RegionNone      Region = ""
	RegionAfrica    Region = "Africa"
	RegionAmericas  Region = "Americas"
	RegionAsia      Region = "Asia"
	RegionEurope    Region = "Europe"
	RegionOceania   Region = "Oceania"
	RegionAntarctic Region = "Antarctic"
)

// FilterRegions lists the regions offered by the region filter, in display
// order.
var FilterRegions = []Region{
	RegionAfrica,
	RegionAmericas,
	RegionAsia,
	RegionEurope,
	RegionOceania,
}

// String returns the display name of the region.
func (r Region) String() string {
	return string(r)
}

// Label returns the text shown for the region in a filter control.
func (r Region) Label() string {
	if r == RegionNone {
		return "Filter by Region"
	}
	return string(r)
}

// ParseRegion resolves a filter value case-insensitively. An empty string
// selects no region.
func ParseRegion(value string) (Region, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return RegionNone, nil
	}
	for _, r := range FilterRegions {
		if strings.EqualFold(trimmed, string(r)) {
			return r, nil
		}
	}
	return RegionNone, fmt.Errorf("unknown region %q: must be one of %s", value, regionNames())
}

func regionNames() string {
	names := make([]string, len(FilterRegions))
	for i, r := range FilterRegions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
