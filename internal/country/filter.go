package country

import "strings"

// Filter is the list view's search and region selection. The zero value
// matches every country.
type Filter struct {
	Search string
	Region Region
}

// Matches reports whether c passes both the name and region predicates.
func (f Filter) Matches(c Country) bool {
	if f.Region != RegionNone {
		region, ok := c.Region.Get()
		if !ok || region != f.Region {
			return false
		}
	}
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name.Common), strings.ToLower(f.Search))
}

// Apply returns the countries matching the filter, preserving order.
func (f Filter) Apply(countries []Country) []Country {
	visible := make([]Country, 0, len(countries))
	for _, c := range countries {
		if f.Matches(c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Region == RegionNone
}
