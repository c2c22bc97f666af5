package browser

import (
	"context"

	"github.com/alexisbeaulieu97/worldview/internal/country"
)

// CountryService exposes the two fetches the browser requires.
type CountryService interface {
	List(ctx context.Context) ([]country.Country, error)
	Get(ctx context.Context, code string) (country.Country, error)
}
