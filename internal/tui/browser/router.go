package browser

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/worldview/internal/country"
)

// Page selects which view a route renders.
type Page int

const (
	PageList Page = iota
	PageDetail
)

func (p Page) String() string {
	switch p {
	case PageDetail:
		return "detail"
	default:
		return "list"
	}
}

// Route is a navigation target: the list at "/" or a country at
// "/country/{code}".
type Route struct {
	Page Page
	Code string
}

// ListRoute returns the root route.
func ListRoute() Route {
	return Route{Page: PageList}
}

// DetailRoute returns the route for a country code, used verbatim.
func DetailRoute(code string) Route {
	return Route{Page: PageDetail, Code: code}
}

// Path renders the route in URL form.
func (r Route) Path() string {
	if r.Page == PageDetail {
		return "/country/" + r.Code
	}
	return "/"
}

// ParseRoute maps "/" to the list and "/country/{code}" to a detail route.
// Codes are upper-cased; any other path is rejected.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "/" {
		return ListRoute(), nil
	}

	rest, ok := strings.CutPrefix(trimmed, "/country/")
	if !ok || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}

	code, err := country.ParseCode(rest)
	if err != nil {
		return Route{}, fmt.Errorf("route %q: %w", path, err)
	}
	return DetailRoute(code), nil
}
