package country

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Country is a single record returned by the REST Countries API. Only the
// fields the directory consumes are modelled.
type Country struct {
	Code       string             `json:"cca3" validate:"required,len=3,alpha,uppercase"`
	Name       Name               `json:"name"`
	Flags      Flags              `json:"flags"`
	Population Optional[int64]    `json:"population,omitzero"`
	Region     Optional[Region]   `json:"region,omitzero"`
	Capital    Optional[[]string] `json:"capital,omitzero"`
	Subregion  Optional[string]   `json:"subregion,omitzero"`
	Borders    Optional[[]string] `json:"borders,omitzero"`
}

// Name holds the display names of a country.
type Name struct {
	Common string `json:"common" validate:"required"`
}

// Flags references the flag image in raster and vector form.
type Flags struct {
	PNG string           `json:"png"`
	SVG string           `json:"svg"`
	Alt Optional[string] `json:"alt,omitzero"`
}

// BorderCodes returns the neighbouring country codes, or nil when absent.
func (c Country) BorderCodes() []string {
	return c.Borders.OrElse(nil)
}

// FirstCapital returns the first listed capital.
func (c Country) FirstCapital() (string, bool) {
	capitals, ok := c.Capital.Get()
	if !ok || len(capitals) == 0 {
		return "", false
	}
	return capitals[0], true
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks the invariants a decoded record must satisfy before it is
// shown.
func (c Country) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("country %q: %w", c.Code, err)
	}
	if population, ok := c.Population.Get(); ok && population < 0 {
		return fmt.Errorf("country %q: population must be non-negative, got %d", c.Code, population)
	}
	return nil
}

// ParseCode normalises a three-letter country code to upper case.
func ParseCode(value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) != 3 {
		return "", fmt.Errorf("invalid country code %q: expected three letters", value)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("invalid country code %q: expected three letters", value)
		}
	}
	return code, nil
}

// Dedupe returns the collection with repeated codes removed, keeping the
// first occurrence, along with the codes that were dropped.
func Dedupe(countries []Country) ([]Country, []string) {
	seen := make(map[string]struct{}, len(countries))
	unique := make([]Country, 0, len(countries))
	var dropped []string
	for _, c := range countries {
		if _, ok := seen[c.Code]; ok {
			dropped = append(dropped, c.Code)
			continue
		}
		seen[c.Code] = struct{}{}
		unique = append(unique, c)
	}
	return unique, dropped
}
