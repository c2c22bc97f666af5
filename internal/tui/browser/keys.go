package browser

import (
	"github.com/charmbracelet/bubbles/key"
)

type listKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding
	Open       key.Binding
	Clear      key.Binding
	Retry      key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.NextRegion, k.Clear, k.Theme, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextRegion, k.PrevRegion, k.Clear},
		{k.Open, k.Retry, k.Theme, k.Quit},
	}
}

type detailKeyMap struct {
	Back  key.Binding
	Prev  key.Binding
	Next  key.Binding
	Open  key.Binding
	Retry key.Binding
	Theme key.Binding
	Quit  key.Binding
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Next, k.Open, k.Theme, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Prev, k.Next, k.Open},
		{k.Retry, k.Theme, k.Quit},
	}
}

func defaultListKeys() listKeyMap {
	return listKeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "region")),
		PrevRegion: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev region")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filters")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Theme:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func defaultDetailKeys() detailKeyMap {
	return detailKeyMap{
		Back:  key.NewBinding(key.WithKeys("esc", "backspace", "b"), key.WithHelp("esc", "back")),
		Prev:  key.NewBinding(key.WithKeys("left", "shift+tab", "h"), key.WithHelp("←", "prev border")),
		Next:  key.NewBinding(key.WithKeys("right", "tab", "l"), key.WithHelp("→", "next border")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open border")),
		Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
