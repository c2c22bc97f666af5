package browser

import (
	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
)

// Phase is the lifecycle state of a view's request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	case PhaseNotFound:
		return "not_found"
	default:
		return "idle"
	}
}

const (
	ListErrorMessage   = country.ListErrorMessage
	DetailErrorMessage = country.DetailErrorMessage
	NoMatchMessage     = country.NoMatchMessage
	NoBordersMessage   = country.NoBordersMessage
	ListLoadingMessage = "Loading countries…"
	LoadingMessage     = "Loading…"
	ThemeSaveMessage   = "Theme preference could not be saved."
)

// NotFoundMessage is shown when the API has no record for code.
var NotFoundMessage = country.NotFoundMessage

// Navigation Messages

// NavigateMsg requests a route change that is pushed onto history.
type NavigateMsg struct {
	Route Route
}

// BackMsg requests a return to the previous route.
type BackMsg struct{}

// Fetch Messages

// CountriesLoadedMsg carries the collection for the list request tagged
// Generation.
type CountriesLoadedMsg struct {
	Generation uint64
	Countries  []country.Country
}

// CountriesErrorMsg reports a failed list request.
type CountriesErrorMsg struct {
	Generation uint64
	Err        error
}

// CountryLoadedMsg carries the record for the detail request tagged
// Generation.
type CountryLoadedMsg struct {
	Generation uint64
	Code       string
	Country    country.Country
}

// CountryErrorMsg reports a failed detail request. NotFound distinguishes an
// unknown code from other failures.
type CountryErrorMsg struct {
	Generation uint64
	Code       string
	Err        error
	NotFound   bool
}

// Theme Messages

// ThemeChangedMsg reports a completed toggle. Mode is the value that toggle
// produced and is stale when toggles overlap. Err is set when the mode could
// not be persisted.
type ThemeChangedMsg struct {
	Mode theme.Mode
	Err  error
}

// Error Messages

// ErrorMsg shows a dismissible banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
