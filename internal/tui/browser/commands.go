package browser

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/worldview/internal/theme"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

var errNoService = errors.New("no country service configured")

// loadCountriesCmd fetches the collection for list request generation.
func loadCountriesCmd(ctx context.Context, svc CountryService, generation uint64) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return CountriesErrorMsg{Generation: generation, Err: errNoService}
		}

		countries, err := svc.List(ctx)
		if err != nil {
			return CountriesErrorMsg{Generation: generation, Err: err}
		}

		return CountriesLoadedMsg{Generation: generation, Countries: countries}
	}
}

// loadCountryCmd fetches one record for detail request generation.
func loadCountryCmd(ctx context.Context, svc CountryService, generation uint64, code string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return CountryErrorMsg{Generation: generation, Code: code, Err: errNoService}
		}

		c, err := svc.Get(ctx, code)
		if err != nil {
			return CountryErrorMsg{
				Generation: generation,
				Code:       code,
				Err:        err,
				NotFound:   apperrors.IsNotFound(err),
			}
		}

		return CountryLoadedMsg{Generation: generation, Code: code, Country: c}
	}
}

// toggleThemeCmd flips and persists the theme.
func toggleThemeCmd(store *theme.Store) tea.Cmd {
	return func() tea.Msg {
		mode, err := store.Toggle()
		return ThemeChangedMsg{Mode: mode, Err: err}
	}
}

// navigateCmd requests a history-recording move to route.
func navigateCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// backCmd requests a return to the previous route.
func backCmd() tea.Msg {
	return BackMsg{}
}

// showErrorCmd raises the error banner.
func showErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Message: message}
	}
}

// clearErrorCmd dismisses the banner after d.
func clearErrorCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
