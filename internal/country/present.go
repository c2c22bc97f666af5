package country

import (
	"github.com/dustin/go-humanize"
)

// NotAvailable is shown in place of any absent optional field.
const NotAvailable = "N/A"

// Presentation is the display form of a country record. Every optional field
// is resolved here so views never deal with absence themselves.
type Presentation struct {
	Code       string
	Name       string
	FlagPNG    string
	FlagSVG    string
	FlagAlt    string
	Population string
	Region     string
	Subregion  string
	Capital    string
	Borders    []string
}

// HasBorders reports whether any border links should be rendered.
func (p Presentation) HasBorders() bool {
	return len(p.Borders) > 0
}

// Present maps c to its display form.
func Present(c Country) Presentation {
	p := Presentation{
		Code:       c.Code,
		Name:       c.Name.Common,
		FlagPNG:    c.Flags.PNG,
		FlagSVG:    c.Flags.SVG,
		FlagAlt:    c.Flags.Alt.OrElse(""),
		Population: FormatPopulation(c.Population),
		Region:     NotAvailable,
		Subregion:  c.Subregion.OrElse(NotAvailable),
		Capital:    NotAvailable,
		Borders:    c.BorderCodes(),
	}
	if p.FlagAlt == "" {
		p.FlagAlt = "Flag of " + c.Name.Common
	}
	if region, ok := c.Region.Get(); ok && region != RegionNone {
		p.Region = region.String()
	}
	if p.Subregion == "" {
		p.Subregion = NotAvailable
	}
	if capital, ok := c.FirstCapital(); ok {
		p.Capital = capital
	}
	return p
}

// FormatPopulation groups digits by thousands.
func FormatPopulation(population Optional[int64]) string {
	value, ok := population.Get()
	if !ok {
		return NotAvailable
	}
	return humanize.Comma(value)
}
