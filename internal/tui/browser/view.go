package browser

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/worldview/internal/country"
)

// Title is the header shown on every route.
const Title = country.Title

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.styles.ErrorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if m.route.Page == PageDetail {
		content.WriteString(m.renderDetailView())
	} else {
		content.WriteString(m.renderListView())
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title and the theme toggle label
func (m Model) renderHeader() string {
	title := m.styles.Title.Render(Title)
	toggle := m.styles.Toggle.Render(m.styles.Mode.ToggleLabel())

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", gap) + toggle)
}

// renderListView renders the filter bar and the card grid
func (m Model) renderListView() string {
	region := m.styles.Region.Render("◀ " + m.Filter().Region.Label() + " ▶")
	filters := lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Search.Render(m.list.search.View()), region)

	var body string
	switch m.list.phase {
	case PhaseIdle, PhaseLoading:
		body = m.styles.Status.Render(m.spinner.View() + " " + ListLoadingMessage)
	case PhaseError:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Error.Render(ListErrorMessage),
			m.styles.Status.Render("Press r to retry."),
		)
	default:
		if len(m.list.visible) == 0 {
			body = m.styles.Status.Render(NoMatchMessage)
		} else {
			body = m.renderGrid()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, filters, body)
}

// renderGrid renders the visible rows of country cards
func (m Model) renderGrid() string {
	cols := m.columns()
	totalRows := (len(m.list.visible) + cols - 1) / cols

	start := m.list.offset
	end := start + m.visibleRows()
	if end > totalRows {
		end = totalRows
	}

	var rows []string
	if start > 0 {
		rows = append(rows, m.styles.Muted.Render("▲ More above"))
	}

	for row := start; row < end; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			index := row*cols + col
			if index >= len(m.list.visible) {
				break
			}
			cards = append(cards, m.renderCard(m.list.visible[index], index == m.list.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	if end < totalRows {
		rows = append(rows, m.styles.Muted.Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders a single country summary
func (m Model) renderCard(c country.Country, selected bool) string {
	p := country.Present(c)
	inner := cardWidth - 2

	lines := []string{
		m.styles.CardTitle.Render(ansi.Truncate(p.Name, inner, "…")),
		m.renderField("Population", p.Population, inner),
		m.renderField("Region", p.Region, inner),
		m.renderField("Capital", p.Capital, inner),
	}

	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderField(label, value string, width int) string {
	prefix := label + ": "
	room := width - lipgloss.Width(prefix)
	if room < 1 {
		room = 1
	}
	return m.styles.Label.Render(prefix) + m.styles.Value.Render(ansi.Truncate(value, room, "…"))
}

// renderDetailView renders the selected country or its request state
func (m Model) renderDetailView() string {
	back := m.styles.Back.Render("⬅ Back")

	var body string
	switch m.detail.phase {
	case PhaseError:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Error.Render(DetailErrorMessage),
			m.styles.Status.Render("Press r to retry."),
		)
	case PhaseNotFound:
		body = m.styles.Status.Render(NotFoundMessage(m.detail.code))
	case PhaseSuccess:
		body = m.renderCountry()
	default:
		body = m.styles.Status.Render(m.spinner.View() + " " + LoadingMessage)
	}

	return lipgloss.JoinVertical(lipgloss.Left, back, body)
}

// renderCountry renders the loaded record with its border links
func (m Model) renderCountry() string {
	record, ok := m.Detail()
	if !ok {
		return ""
	}

	flag := m.styles.Flag.Render(record.FlagAlt + "\n\n" + ansi.Truncate(record.FlagSVG, flagWidth-4, "…"))

	facts := []string{
		m.styles.DetailTitle.Render(record.Name),
		m.styles.Label.Render("Population: ") + m.styles.Value.Render(record.Population),
		m.styles.Label.Render("Region: ") + m.styles.Value.Render(record.Region),
		m.styles.Label.Render("Sub Region: ") + m.styles.Value.Render(record.Subregion),
		m.styles.Label.Render("Capital: ") + m.styles.Value.Render(record.Capital),
		"",
		m.styles.Label.Render("Border Countries:"),
	}
	if record.HasBorders() {
		facts = append(facts, m.renderBorders(record.Borders))
	} else {
		facts = append(facts, m.styles.Muted.Render(NoBordersMessage))
	}
	info := lipgloss.JoinVertical(lipgloss.Left, facts...)

	if m.width < lipgloss.Width(flag)+lipgloss.Width(info) {
		return lipgloss.JoinVertical(lipgloss.Left, flag, info)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, flag, info)
}

// renderBorders lays border chips out in rows that fit the terminal width
func (m Model) renderBorders(codes []string) string {
	limit := m.width - flagWidth - 6
	if limit < 20 {
		limit = m.width - 2
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, code := range codes {
		style := m.styles.Border
		if i == m.detail.border {
			style = m.styles.ActiveBorder
		}
		chip := style.Render(code)
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+w > limit {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the key help for the active route
func (m Model) renderFooter() string {
	var help string
	if m.route.Page == PageDetail {
		help = m.help.View(m.detailKeys)
	} else {
		help = m.help.View(m.listKeys)
	}
	return m.styles.Footer.Render(help)
}
