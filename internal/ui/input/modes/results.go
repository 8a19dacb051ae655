package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/types"
)

// ResultsMode browses the result list
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		// Moving above the first result goes back to the search box
		if ctx.CurrentIndex() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		return []types.Action{types.SubmitAction{}}, true

	case tea.KeyTab:
		return []types.Action{types.ToggleSortAction{}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "s":
		return []types.Action{types.ToggleSortAction{}}, true

	case "o":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenResultsPagerAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
