package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitAction fetches the current query immediately
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type ToggleSortAction struct{}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

// OpenResultsPagerAction shows the current result list in the pager
type OpenResultsPagerAction struct{}

func (a OpenResultsPagerAction) Type() string { return "open_results_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
