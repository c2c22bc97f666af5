package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/worldview/internal/country"
)

const (
	minWidth  = 40
	minHeight = 12

	tooSmallPrefix = "Terminal too small"

	errorBannerTimeout = 5 * time.Second
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
				tooSmallPrefix, m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, tooSmallPrefix) {
			m.showError = false
			m.errorMsg = ""
		}

		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Navigation messages
	case mountMsg:
		return m, m.enter(msg.Route)

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case BackMsg:
		return m, m.back()

	// List messages
	case CountriesLoadedMsg:
		if m.route.Page != PageList || msg.Generation != m.list.generation {
			m.log.WithFields(map[string]any{"generation": msg.Generation}).Debug("discarding stale collection")
			return m, nil
		}

		unique, dropped := country.Dedupe(msg.Countries)
		if len(dropped) > 0 {
			m.log.WithFields(map[string]any{"codes": dropped}).Warn("dropped duplicate country codes")
		}

		m.cancelList()
		m.list.phase = PhaseSuccess
		m.list.countries = unique
		m.refilter()
		m.log.WithFields(map[string]any{"count": len(unique)}).Debug("countries loaded")
		return m, nil

	case CountriesErrorMsg:
		if m.route.Page != PageList || msg.Generation != m.list.generation {
			return m, nil
		}

		m.cancelList()
		m.list.phase = PhaseError
		m.list.countries = nil
		m.list.visible = []country.Country{}
		m.log.Error(msg.Err, "failed to load countries")
		return m, nil

	// Detail messages
	case CountryLoadedMsg:
		if m.route.Page != PageDetail || msg.Generation != m.detail.generation {
			m.log.WithFields(map[string]any{"code": msg.Code, "generation": msg.Generation}).Debug("discarding stale country")
			return m, nil
		}

		m.cancelDetail()
		record := country.Present(msg.Country)
		m.detail.record = &record
		m.detail.phase = PhaseSuccess
		m.detail.border = 0
		return m, nil

	case CountryErrorMsg:
		if m.route.Page != PageDetail || msg.Generation != m.detail.generation {
			return m, nil
		}

		m.cancelDetail()
		m.detail.record = nil
		if msg.NotFound {
			m.detail.phase = PhaseNotFound
			m.log.WithFields(map[string]any{"code": msg.Code}).Info("country not found")
			return m, nil
		}
		m.detail.phase = PhaseError
		m.log.WithFields(map[string]any{"code": msg.Code}).Error(msg.Err, "failed to load country")
		return m, nil

	// Theme messages
	case ThemeChangedMsg:
		m.applyTheme(m.currentMode())
		m.log.WithFields(map[string]any{"theme": m.styles.Mode.String()}).Debug("theme applied")
		if msg.Err != nil {
			return m, showErrorCmd(ThemeSaveMessage)
		}
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, clearErrorCmd(errorBannerTimeout)

	case ClearErrorMsg:
		if !m.showError || strings.HasPrefix(m.errorMsg, tooSmallPrefix) {
			return m, nil
		}
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// navigate pushes the current route onto history and enters route.
func (m *Model) navigate(route Route) tea.Cmd {
	m.history = append(m.history, m.route)
	return m.enter(route)
}

// back returns to the previous route, or to the list when history is empty.
func (m *Model) back() tea.Cmd {
	if len(m.history) == 0 {
		return m.enter(ListRoute())
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.enter(prev)
}

// enter mounts route. Any request owned by the previous route is cancelled.
func (m *Model) enter(route Route) tea.Cmd {
	m.cancelList()
	m.cancelDetail()
	m.route = route
	m.log.WithFields(map[string]any{"route": route.Path()}).Debug("entering route")

	if route.Page == PageDetail {
		return m.loadDetail(route.Code)
	}

	generation := m.list.generation
	m.list = newListState()
	m.list.generation = generation
	return m.loadList()
}

// loadList issues a collection request, keeping the current filter.
func (m *Model) loadList() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.list.generation++
	m.list.cancel = cancel
	m.list.phase = PhaseLoading
	return loadCountriesCmd(ctx, m.service, m.list.generation)
}

// loadDetail resets the detail view and requests code.
func (m *Model) loadDetail(code string) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	generation := m.detail.generation + 1
	m.detail = detailState{
		phase:      PhaseLoading,
		generation: generation,
		code:       code,
		cancel:     cancel,
	}
	return loadCountryCmd(ctx, m.service, generation, code)
}

// handleKeyPress handles keyboard input based on the active route
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelList()
		m.cancelDetail()
		return m, tea.Quit
	case "ctrl+t":
		if m.theme == nil {
			return m, nil
		}
		return m, toggleThemeCmd(m.theme)
	}

	if m.route.Page == PageDetail {
		return m.handleDetailKeys(msg)
	}
	return m.handleListKeys(msg)
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.listKeys

	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursor(-m.columns())
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveCursor(m.columns())
		return m, nil

	case key.Matches(msg, keys.Left):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Right):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.NextRegion):
		m.cycleRegion(1)
		return m, nil

	case key.Matches(msg, keys.PrevRegion):
		m.cycleRegion(-1)
		return m, nil

	case key.Matches(msg, keys.Open):
		if selected, ok := m.Selected(); ok {
			return m, navigateCmd(DetailRoute(selected.Code))
		}
		return m, nil

	case key.Matches(msg, keys.Clear):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
			return m, nil
		}
		m.list.search.SetValue("")
		m.list.region = 0
		m.refilter()
		return m, nil

	case key.Matches(msg, keys.Retry) && m.list.phase == PhaseError:
		return m, m.loadList()
	}

	// Everything else edits the search query.
	before := m.list.search.Value()
	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	if m.list.search.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.detailKeys

	switch {
	case key.Matches(msg, keys.Quit):
		m.cancelDetail()
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, backCmd

	case key.Matches(msg, keys.Prev):
		if record, ok := m.Detail(); ok && record.HasBorders() {
			n := len(record.Borders)
			m.detail.border = (m.detail.border - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, keys.Next):
		if record, ok := m.Detail(); ok && record.HasBorders() {
			m.detail.border = (m.detail.border + 1) % len(record.Borders)
		}
		return m, nil

	case key.Matches(msg, keys.Open):
		if record, ok := m.Detail(); ok && record.HasBorders() {
			return m, navigateCmd(DetailRoute(record.Borders[m.detail.border]))
		}
		return m, nil

	case key.Matches(msg, keys.Retry):
		if m.detail.phase == PhaseError {
			return m, m.loadDetail(m.detail.code)
		}
		return m, nil
	}

	return m, nil
}
