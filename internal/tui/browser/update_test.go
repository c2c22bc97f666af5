package browser

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
	apperrors "github.com/alexisbeaulieu97/worldview/pkg/errors"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := NewModel(newFakeService(), nil)

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.False(t, m.showError)
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m := NewModel(newFakeService(), nil)

	m = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.True(t, m.showError, "Should show error for small terminal")
	assert.Contains(t, m.errorMsg, "Terminal too small")

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.False(t, m.showError, "Should clear size error once the terminal is big enough")
}

func TestUpdate_SpinnerTickMsg(t *testing.T) {
	m := NewModel(newFakeService(), nil)

	_, cmd := stepCmd(t, m, spinner.TickMsg{})
	assert.NotNil(t, cmd)
}

func TestUpdate_MountListLoadsCollectionOnce(t *testing.T) {
	svc := newFakeService()
	m := newTestModel(t, svc)

	m, cmd := stepCmd(t, m, mountMsg{Route: ListRoute()})
	require.NotNil(t, cmd)
	assert.Equal(t, PhaseLoading, m.ListPhase())
	assert.Contains(t, m.View(), ListLoadingMessage)

	m = step(t, m, cmd())

	assert.Equal(t, PhaseSuccess, m.ListPhase())
	assert.Len(t, m.Visible(), 5)
	assert.Equal(t, 1, svc.listCalls)
	assert.Nil(t, m.list.cancel)
}

func TestUpdate_ListErrorShowsFixedMessage(t *testing.T) {
	svc := newFakeService()
	svc.listErr = apperrors.NewStatusError("list countries", "https://example.test/all", 500)
	m := newTestModel(t, svc)

	m = settle(t, m, mountMsg{Route: ListRoute()})

	assert.Equal(t, PhaseError, m.ListPhase())
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), ListErrorMessage)
}

func TestUpdate_ListRetryAfterError(t *testing.T) {
	svc := newFakeService()
	svc.listErr = errors.New("connection refused")
	m := newTestModel(t, svc)
	m = settle(t, m, mountMsg{Route: ListRoute()})
	require.Equal(t, PhaseError, m.ListPhase())

	svc.listErr = nil
	m, cmd := stepCmd(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, PhaseLoading, m.ListPhase())

	m = step(t, m, cmd())
	assert.Equal(t, PhaseSuccess, m.ListPhase())
	assert.Equal(t, 2, svc.listCalls)
}

func TestUpdate_RTypesIntoSearchWhenLoaded(t *testing.T) {
	svc := newFakeService()
	m := loadedList(t, svc)

	m = step(t, m, runes("r"))

	assert.Equal(t, "r", m.Filter().Search)
	assert.Equal(t, 1, svc.listCalls)
	assert.Equal(t, []string{"FRA", "DEU", "ATA"}, codesOf(m.Visible()))
}

func TestUpdate_StaleCollectionIgnored(t *testing.T) {
	m := newTestModel(t, newFakeService())
	m = step(t, m, mountMsg{Route: ListRoute()})
	current := m.list.generation

	m = step(t, m, CountriesLoadedMsg{Generation: current - 1, Countries: sampleCountries()[:1]})
	assert.Equal(t, PhaseLoading, m.ListPhase())

	m = step(t, m, CountriesErrorMsg{Generation: current - 1, Err: errors.New("late")})
	assert.Equal(t, PhaseLoading, m.ListPhase())
}

func TestUpdate_DuplicateCodesDropped(t *testing.T) {
	m := newTestModel(t, newFakeService())
	m = step(t, m, mountMsg{Route: ListRoute()})

	dupes := append(sampleCountries(), country.Country{Code: "FRA", Name: country.Name{Common: "France again"}})
	m = step(t, m, CountriesLoadedMsg{Generation: m.list.generation, Countries: dupes})

	assert.Len(t, m.Visible(), 5)
	assert.Equal(t, "France", m.Visible()[0].Name.Common)
}

func TestUpdate_SearchFiltersWithoutRequests(t *testing.T) {
	svc := newFakeService()
	m := loadedList(t, svc)

	m = step(t, m, runes("ch"))
	assert.Equal(t, []string{"TCD", "CHL"}, codesOf(m.Visible()))

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, country.RegionAfrica, m.Filter().Region)
	assert.Equal(t, []string{"TCD"}, codesOf(m.Visible()))

	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, country.RegionNone, m.Filter().Region)
	assert.Equal(t, []string{"TCD", "CHL"}, codesOf(m.Visible()))

	assert.Equal(t, 1, svc.listCalls)
}

func TestUpdate_SearchIsCaseInsensitive(t *testing.T) {
	m := loadedList(t, newFakeService())

	m = step(t, m, runes("FRA"))

	assert.Equal(t, []string{"FRA"}, codesOf(m.Visible()))
}

func TestUpdate_NoMatchMessage(t *testing.T) {
	m := loadedList(t, newFakeService())

	m = step(t, m, runes("zzz"))

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), NoMatchMessage)
}

func TestUpdate_EscClearsFilters(t *testing.T) {
	m := loadedList(t, newFakeService())
	m = step(t, m, runes("ch"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.Filter().IsZero())
	assert.Len(t, m.Visible(), 5)
}

func TestUpdate_ArrowsMoveSelection(t *testing.T) {
	m := loadedList(t, newFakeService())
	require.Equal(t, 4, m.columns())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "DEU", selected.Code)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = m.Selected()
	assert.Equal(t, "ATA", selected.Code, "down clamps to the last card")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	selected, _ = m.Selected()
	assert.Equal(t, "FRA", selected.Code)
}

func TestUpdate_EnterOpensDetail(t *testing.T) {
	svc := newFakeService()
	m := loadedList(t, svc)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Route: DetailRoute("DEU")}, cmd())
	assert.Equal(t, ListRoute(), m.Route())

	m, cmd = stepCmd(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, DetailRoute("DEU"), m.Route())
	assert.Equal(t, PhaseLoading, m.DetailPhase())
	assert.Equal(t, []Route{ListRoute()}, m.History())

	m = step(t, m, cmd())
	assert.Equal(t, PhaseSuccess, m.DetailPhase())
	record, ok := m.Detail()
	require.True(t, ok)
	assert.Equal(t, "Germany", record.Name)
	assert.Equal(t, []string{"DEU"}, svc.getCalls)
}

func TestUpdate_EnterWithNoSelectionDoesNothing(t *testing.T) {
	m := loadedList(t, newFakeService())
	m = step(t, m, runes("zzz"))

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, ListRoute(), m.Route())
}

func TestUpdate_NavigationResetsDetailBeforeNewData(t *testing.T) {
	svc := newFakeService()
	m := newTestModel(t, svc)
	m = settle(t, m, NavigateMsg{Route: DetailRoute("FRA")})
	require.Equal(t, PhaseSuccess, m.DetailPhase())

	m, cmd := stepCmd(t, m, NavigateMsg{Route: DetailRoute("DEU")})
	require.NotNil(t, cmd)

	assert.Equal(t, PhaseLoading, m.DetailPhase())
	_, ok := m.Detail()
	assert.False(t, ok, "previous record must be cleared while loading")
	assert.NotContains(t, m.View(), "France")

	m = step(t, m, cmd())
	record, ok := m.Detail()
	require.True(t, ok)
	assert.Equal(t, "Germany", record.Name)
}

func TestUpdate_SupersededDetailRequestIsCancelledAndIgnored(t *testing.T) {
	svc := newFakeService()
	m := newTestModel(t, svc)

	m, fraCmd := stepCmd(t, m, NavigateMsg{Route: DetailRoute("FRA")})
	require.NotNil(t, fraCmd)
	m, deuCmd := stepCmd(t, m, NavigateMsg{Route: DetailRoute("DEU")})
	require.NotNil(t, deuCmd)

	// The FRA request runs after DEU superseded it.
	late := fraCmd()
	failed, ok := late.(CountryErrorMsg)
	require.True(t, ok, "superseded request should observe cancellation")
	assert.False(t, failed.NotFound)

	m = step(t, m, late)
	assert.Equal(t, PhaseLoading, m.DetailPhase())

	// A late success for the old generation is dropped as well.
	m = step(t, m, CountryLoadedMsg{Generation: failed.Generation, Code: "FRA", Country: svc.records["FRA"]})
	assert.Equal(t, PhaseLoading, m.DetailPhase())

	m = step(t, m, deuCmd())
	record, ok := m.Detail()
	require.True(t, ok)
	assert.Equal(t, "Germany", record.Name)
}

func TestUpdate_DetailResultIgnoredAfterLeaving(t *testing.T) {
	m := newTestModel(t, newFakeService())
	m, cmd := stepCmd(t, m, NavigateMsg{Route: DetailRoute("FRA")})
	require.NotNil(t, cmd)
	generation := m.detail.generation

	m = step(t, m, BackMsg{})
	m = step(t, m, CountryLoadedMsg{Generation: generation, Code: "FRA", Country: sampleCountries()[0]})

	assert.Equal(t, ListRoute(), m.Route())
	_, ok := m.Detail()
	assert.False(t, ok)
}

func TestUpdate_DetailNotFound(t *testing.T) {
	m := newTestModel(t, newFakeService())

	m = settle(t, m, NavigateMsg{Route: DetailRoute("ZZZ")})

	assert.Equal(t, PhaseNotFound, m.DetailPhase())
	assert.Contains(t, m.View(), NotFoundMessage("ZZZ"))
	assert.NotContains(t, m.View(), DetailErrorMessage)
}

func TestUpdate_DetailStatusErrorShowsFixedMessage(t *testing.T) {
	svc := newFakeService()
	svc.getErr = apperrors.NewStatusError("get country", "https://example.test/alpha/FRA", 500)
	m := newTestModel(t, svc)

	m = settle(t, m, NavigateMsg{Route: DetailRoute("FRA")})

	assert.Equal(t, PhaseError, m.DetailPhase())
	assert.Contains(t, m.View(), DetailErrorMessage)
}

func TestUpdate_DetailRetryAfterError(t *testing.T) {
	svc := newFakeService()
	svc.getErr = errors.New("connection reset")
	m := newTestModel(t, svc)
	m = settle(t, m, NavigateMsg{Route: DetailRoute("FRA")})
	require.Equal(t, PhaseError, m.DetailPhase())

	svc.getErr = nil
	m = settle(t, m, runes("r"))

	assert.Equal(t, PhaseSuccess, m.DetailPhase())
	assert.Equal(t, []string{"FRA", "FRA"}, svc.getCalls)
	assert.Len(t, m.History(), 1, "retry must not push history")
}

func TestUpdate_BorderNavigationAndBack(t *testing.T) {
	m := loadedList(t, newFakeService())
	m = settle(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // FRA

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.detail.border)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.detail.border, "border selection wraps")
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.detail.border)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m = settle(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // DEU
	assert.Equal(t, DetailRoute("DEU"), m.Route())
	assert.Equal(t, []Route{ListRoute(), DetailRoute("FRA")}, m.History())

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
	m, cmd = stepCmd(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, DetailRoute("FRA"), m.Route())
	assert.Equal(t, PhaseLoading, m.DetailPhase())

	m, cmd = stepCmd(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	m, cmd = stepCmd(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, ListRoute(), m.Route())
	assert.Equal(t, PhaseLoading, m.ListPhase())
	assert.True(t, m.Filter().IsZero(), "filter state is not restored")
}

func TestUpdate_BackWithoutHistoryGoesToList(t *testing.T) {
	m := NewModel(newFakeService(), nil, WithStartRoute(DetailRoute("FRA")))
	m = step(t, m, mountMsg{Route: DetailRoute("FRA")})

	m = step(t, m, BackMsg{})

	assert.Equal(t, ListRoute(), m.Route())
}

func TestUpdate_ThemeToggle(t *testing.T) {
	store, prefs := newThemeStore(t)
	m := NewModel(newFakeService(), store)
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), theme.Light.ToggleLabel())

	m = settle(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, theme.Dark, m.styles.Mode)
	assert.Contains(t, m.View(), "☀️ Light Mode")
	value, ok := prefs.Get(theme.StorageKey)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestUpdate_ThemeToggleWithoutStore(t *testing.T) {
	m := NewModel(newFakeService(), nil)

	_, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Nil(t, cmd)
}

func TestUpdate_ThemeMessagesOutOfOrder(t *testing.T) {
	store, prefs := newThemeStore(t)
	m := NewModel(newFakeService(), store)

	first := toggleThemeCmd(store)()
	second := toggleThemeCmd(store)()
	require.Equal(t, theme.Light, store.Mode())

	m = step(t, m, second)
	m = step(t, m, first)

	assert.Equal(t, theme.Light, m.styles.Mode)
	value, _ := prefs.Get(theme.StorageKey)
	assert.Equal(t, "light", value)
}

func TestUpdate_ThemePersistFailureShowsBanner(t *testing.T) {
	storage := &failingStorage{values: map[string]string{}}
	store := theme.New(storage, theme.NoAmbient)
	m := NewModel(newFakeService(), store)

	m, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	changed := cmd()
	require.IsType(t, ThemeChangedMsg{}, changed)

	m, cmd = stepCmd(t, m, changed)
	assert.Equal(t, theme.Dark, m.styles.Mode, "the toggle applies even when saving fails")
	require.NotNil(t, cmd)
	assert.Equal(t, ErrorMsg{Message: ThemeSaveMessage}, cmd())

	m, cmd = stepCmd(t, m, cmd())
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), ThemeSaveMessage)
	assert.NotNil(t, cmd, "the banner schedules its own dismissal")

	m = step(t, m, ClearErrorMsg{})
	assert.False(t, m.showError)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := loadedList(t, newFakeService())

	_, cmd := stepCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// q is a search character on the list page.
	m = step(t, m, runes("q"))
	assert.Equal(t, "q", m.Filter().Search)

	m = settle(t, m, NavigateMsg{Route: DetailRoute("FRA")})
	_, cmd = stepCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_ErrorMessages(t *testing.T) {
	m := NewModel(newFakeService(), nil)

	m, cmd := stepCmd(t, m, ErrorMsg{Message: "boom"})
	assert.True(t, m.showError)
	assert.Equal(t, "boom", m.errorMsg)
	assert.NotNil(t, cmd)

	m = step(t, m, ClearErrorMsg{})
	assert.False(t, m.showError)
	assert.Empty(t, m.errorMsg)
}

func TestUpdate_ClearErrorKeepsSizeWarning(t *testing.T) {
	m := NewModel(newFakeService(), nil)
	m = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	require.True(t, m.showError)

	m = step(t, m, ClearErrorMsg{})

	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "Terminal too small")
}

type failingStorage struct {
	values map[string]string
}

func (f *failingStorage) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *failingStorage) Set(string, string) error {
	return errors.New("read-only file system")
}

func codesOf(countries []country.Country) []string {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.Code)
	}
	return codes
}
