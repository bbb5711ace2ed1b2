package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the normal-mode bindings for the help footer and popup.
// Dispatch happens in the input package; these only document it.
type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Scroll  key.Binding
	Page    key.Binding
	Edges   key.Binding
	Jump    key.Binding
	Step    key.Binding
	Explore key.Binding
	Contact key.Binding
	Pager   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "j", "k"),
			key.WithHelp("↑↓/jk", "scroll"),
		),
		Page: key.NewBinding(
			key.WithKeys("pgup", "pgdown", "space", "ctrl+u", "ctrl+d"),
			key.WithHelp("pgup/pgdn", "scroll a page"),
		),
		Edges: key.NewBinding(
			key.WithKeys("g", "G"),
			key.WithHelp("gg/G", "top/bottom of page"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "home", "end"),
			key.WithHelp("1-9", "go to section"),
		),
		Step: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "n", "p"),
			key.WithHelp("tab/n p", "next/previous when ready"),
		),
		Explore: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view projects (home)"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact"),
		),
		Pager: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Scroll, k.Contact, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Step, k.Jump},
		{k.Scroll, k.Page, k.Edges, k.Explore},
		{k.Contact, k.Pager, k.Help, k.Quit},
	}
}
