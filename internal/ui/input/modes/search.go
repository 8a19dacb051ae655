package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/types"
)

// SearchMode edits the query. Every edit is forwarded to the coordinator.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyTab:
		return []types.Action{types.ToggleSortAction{}}, true
	case tea.KeyEsc, tea.KeyDown:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
