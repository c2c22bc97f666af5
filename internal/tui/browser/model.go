package browser

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/worldview/internal/country"
	"github.com/alexisbeaulieu97/worldview/internal/logger"
	"github.com/alexisbeaulieu97/worldview/internal/theme"
)

const (
	cardWidth  = 26
	cardHeight = 6
	flagWidth  = 36

	// Rows taken by header, filter bar, status line and footer.
	chromeHeight = 11
)

// Model is the country browser.
type Model struct {
	// Core dependencies
	service CountryService
	theme   *theme.Store
	log     *logger.Logger

	// Routing
	route   Route
	start   Route
	history []Route

	// View state
	list   listState
	detail detailState

	// Component state
	styles     Styles
	spinner    spinner.Model
	help       help.Model
	listKeys   listKeyMap
	detailKeys detailKeyMap

	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int
}

type listState struct {
	phase      Phase
	generation uint64
	cancel     context.CancelFunc
	countries  []country.Country
	visible    []country.Country
	search     textinput.Model
	region     int // 0 is no filter, otherwise country.FilterRegions[region-1]
	cursor     int
	offset     int // first visible grid row
}

type detailState struct {
	phase      Phase
	generation uint64
	code       string
	cancel     context.CancelFunc
	record     *country.Presentation
	border     int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for navigation and fetch events.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithStartRoute sets the route shown on launch.
func WithStartRoute(route Route) Option {
	return func(m *Model) {
		m.start = route
	}
}

// NewModel creates a browser over svc. The theme store may be nil, in which
// case the light theme is used and toggling is disabled.
func NewModel(svc CountryService, store *theme.Store, opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		service:    svc,
		theme:      store,
		start:      ListRoute(),
		route:      ListRoute(),
		list:       newListState(),
		help:       help.New(),
		listKeys:   defaultListKeys(),
		detailKeys: defaultDetailKeys(),
		spinner:    s,
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.applyTheme(m.currentMode())
	return m
}

func newListState() listState {
	input := textinput.New()
	input.Placeholder = "Search for a country…"
	input.Prompt = "🔍 "
	input.CharLimit = 64
	input.Width = 30
	input.Focus()

	return listState{
		phase:   PhaseIdle,
		search:  input,
		visible: []country.Country{},
	}
}

// Init mounts the start route.
func (m Model) Init() tea.Cmd {
	start := m.start
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		func() tea.Msg { return mountMsg{Route: start} },
	)
}

// mountMsg enters a route without recording history.
type mountMsg struct {
	Route Route
}

// Helper Methods

func (m Model) currentMode() theme.Mode {
	if m.theme == nil {
		return theme.Light
	}
	return m.theme.Mode()
}

func (m *Model) applyTheme(mode theme.Mode) {
	m.styles = NewStyles(mode)
	m.spinner.Style = m.styles.Spinner
}

// Route returns the active route.
func (m Model) Route() Route {
	return m.route
}

// History returns the routes Back would return to, oldest first.
func (m Model) History() []Route {
	return append([]Route(nil), m.history...)
}

// ListPhase returns the list view's request state.
func (m Model) ListPhase() Phase {
	return m.list.phase
}

// DetailPhase returns the detail view's request state.
func (m Model) DetailPhase() Phase {
	return m.detail.phase
}

// Filter returns the active list filter.
func (m Model) Filter() country.Filter {
	f := country.Filter{Search: m.list.search.Value()}
	if m.list.region > 0 {
		f.Region = country.FilterRegions[m.list.region-1]
	}
	return f
}

// Visible returns the filtered collection in API order.
func (m Model) Visible() []country.Country {
	return m.list.visible
}

// Selected returns the country under the list cursor.
func (m Model) Selected() (country.Country, bool) {
	if m.list.cursor < 0 || m.list.cursor >= len(m.list.visible) {
		return country.Country{}, false
	}
	return m.list.visible[m.list.cursor], true
}

// Detail returns the loaded record for the detail view.
func (m Model) Detail() (country.Presentation, bool) {
	if m.detail.record == nil {
		return country.Presentation{}, false
	}
	return *m.detail.record, true
}

// refilter recomputes the visible set and resets the cursor.
func (m *Model) refilter() {
	m.list.visible = m.Filter().Apply(m.list.countries)
	m.list.cursor = 0
	m.list.offset = 0
}

// columns returns how many cards fit side by side.
func (m Model) columns() int {
	cols := m.width / (cardWidth + 2)
	if cols < 1 {
		return 1
	}
	if cols > 4 {
		return 4
	}
	return cols
}

// visibleRows returns how many card rows fit on screen.
func (m Model) visibleRows() int {
	rows := (m.height - chromeHeight) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// moveCursor shifts the list selection by delta cards, clamped to the
// visible set, and scrolls to keep it on screen.
func (m *Model) moveCursor(delta int) {
	if len(m.list.visible) == 0 {
		return
	}

	next := m.list.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.list.visible) {
		next = len(m.list.visible) - 1
	}
	m.list.cursor = next
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	row := m.list.cursor / m.columns()
	rows := m.visibleRows()
	if row < m.list.offset {
		m.list.offset = row
	}
	if row >= m.list.offset+rows {
		m.list.offset = row - rows + 1
	}
}

// cycleRegion moves the region filter by delta, wrapping through "none".
func (m *Model) cycleRegion(delta int) {
	n := len(country.FilterRegions) + 1
	m.list.region = ((m.list.region+delta)%n + n) % n
	m.refilter()
}

// cancelList aborts the in-flight collection request, if any.
func (m *Model) cancelList() {
	if m.list.cancel != nil {
		m.list.cancel()
		m.list.cancel = nil
	}
}

// cancelDetail aborts the in-flight detail request, if any.
func (m *Model) cancelDetail() {
	if m.detail.cancel != nil {
		m.detail.cancel()
		m.detail.cancel = nil
	}
}
