package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/worldview/internal/theme"
)

// palette holds the colours of one theme mode.
type palette struct {
	background lipgloss.Color
	surface    lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	accent     lipgloss.Color
	danger     lipgloss.Color
}

var (
	// Colors
	lightPalette = palette{
		background: lipgloss.Color("#f8fafc"), // slate-50
		surface:    lipgloss.Color("#ffffff"),
		text:       lipgloss.Color("#0f172a"), // slate-900
		muted:      lipgloss.Color("#64748b"), // slate-500
		border:     lipgloss.Color("#cbd5e1"), // slate-300
		accent:     lipgloss.Color("#0ea5e9"), // sky-500
		danger:     lipgloss.Color("#ef4444"), // red-500
	}

	darkPalette = palette{
		background: lipgloss.Color("#0f172a"), // slate-900
		surface:    lipgloss.Color("#1e293b"), // slate-800
		text:       lipgloss.Color("#f1f5f9"), // slate-100
		muted:      lipgloss.Color("#94a3b8"), // slate-400
		border:     lipgloss.Color("#334155"), // slate-700
		accent:     lipgloss.Color("#38bdf8"), // sky-400
		danger:     lipgloss.Color("#f87171"), // red-400
	}
)

// Styles is the rendered look of the browser for one theme mode.
type Styles struct {
	Mode theme.Mode

	Header       lipgloss.Style
	Title        lipgloss.Style
	Toggle       lipgloss.Style
	Search       lipgloss.Style
	Region       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Muted        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	ErrorBanner  lipgloss.Style
	Back         lipgloss.Style
	DetailTitle  lipgloss.Style
	Flag         lipgloss.Style
	Border       lipgloss.Style
	ActiveBorder lipgloss.Style
	Footer       lipgloss.Style
	Spinner      lipgloss.Style
}

// NewStyles builds the style set for mode.
func NewStyles(mode theme.Mode) Styles {
	p := lightPalette
	if mode.IsDark() {
		p = darkPalette
	}

	card := lipgloss.NewStyle().
		Foreground(p.text).
		Background(p.surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1).
		Width(cardWidth)

	chip := lipgloss.NewStyle().
		Foreground(p.text).
		Background(p.surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.border).
		Padding(0, 1).
		MarginRight(1)

	return Styles{
		Mode: mode,

		Header: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.border).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			PaddingLeft(1),

		Toggle: lipgloss.NewStyle().
			Foreground(p.text).
			PaddingRight(1),

		Search: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		Region: lipgloss.NewStyle().
			Foreground(p.text).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			MarginLeft(2),

		Card:         card,
		SelectedCard: card.BorderForeground(p.accent).BorderStyle(lipgloss.ThickBorder()),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),

		Value: lipgloss.NewStyle().
			Foreground(p.muted),

		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		Status: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true).
			PaddingTop(1).
			PaddingLeft(1),

		Error: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			PaddingTop(1).
			PaddingLeft(1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.danger),

		Back: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2).
			MarginBottom(1),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text).
			MarginBottom(1),

		Flag: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(1, 2).
			MarginRight(4).
			Width(flagWidth),

		Border:       chip,
		ActiveBorder: chip.BorderForeground(p.accent).Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border).
			MarginTop(1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.accent),
	}
}
