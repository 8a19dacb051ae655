package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input.
// The text is kept across mode changes; only focus follows the mode.
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEnter:
		return []types.Action{types.SubmitAction{}}, true
	default:
		// Returning false lets the handler feed the key to the text input
		return nil, false
	}
}
