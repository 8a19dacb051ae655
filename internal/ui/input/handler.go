package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrip/internal/ui/input/modes"
	"moviegrip/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the query text box
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

// New creates a handler that starts in search mode with the box focused
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeResults] = modes.NewResultsMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Keys the text mode did not consume are edits
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// ChangeMode switches mode outside of key handling
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

// TextInput returns the query text box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText replaces the query text without emitting an edit
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
