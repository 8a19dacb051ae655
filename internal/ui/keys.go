package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "moviegrip/internal/ui/input/types"
)

// keyMap describes the bindings shown in the help bar
type keyMap struct {
	Submit  key.Binding
	Sort    key.Binding
	Results key.Binding
	Search  key.Binding
	Move    key.Binding
	Pager   key.Binding
	Help    key.Binding
	Quit    key.Binding
	mode    inputtypes.Mode
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),
		Sort:    key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "toggle sort")),
		Results: key.NewBinding(key.WithKeys("esc", "down"), key.WithHelp("esc", "results")),
		Search:  key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "edit query")),
		Move:    key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
		Pager:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open list")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// forMode returns a copy whose short help matches the active mode
func (k keyMap) forMode(mode inputtypes.Mode) keyMap {
	k.mode = mode
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	if k.mode == inputtypes.ModeResults {
		quit := k.Quit
		quit.SetHelp("q", "quit")
		return []key.Binding{k.Move, k.Search, k.Sort, k.Pager, k.Help, quit}
	}
	return []key.Binding{k.Submit, k.Sort, k.Results, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Sort, k.Results},
		{k.Search, k.Move, k.Pager},
		{k.Help, k.Quit},
	}
}
